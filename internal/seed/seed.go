// Package seed provides helpers to create demo data for the shop database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"shopadmin/internal/models"
	"shopadmin/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data the seeder creates.
type Options struct {
	NumUsers    int
	NumProducts int
	ShouldClean bool
}

var brandNames = []string{
	"Nike", "Adidas", "Puma", "Converse", "Vans", "New Balance", "Biti's",
}

var categoryNames = []string{
	"Giày thể thao", "Giày chạy bộ", "Giày đá bóng", "Giày thời trang", "Dép & Sandal",
}

var productAdjectives = []string{
	"Air", "Classic", "Runner", "Street", "Pro", "Lite", "Max", "Retro",
}

// Seeder populates the database with demo shop data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Order matters for FK constraints.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"comments", "product_feedback_images", "product_sizes",
		"products", "images", "posts", "users", "brands", "categories",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// Run seeds brands, categories, users, products with sizes, images and
// comments according to opts.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	brands, err := s.seedBrands()
	if err != nil {
		return err
	}
	categories, err := s.seedCategories()
	if err != nil {
		return err
	}
	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return err
	}
	products, err := s.seedProducts(opts.NumProducts, brands, categories, users)
	if err != nil {
		return err
	}
	posts, err := s.seedPosts(users)
	if err != nil {
		return err
	}
	if err := s.seedComments(users, products, posts); err != nil {
		return err
	}

	log.Printf("Seeded %d brands, %d categories, %d users, %d products",
		len(brands), len(categories), len(users), len(products))
	return nil
}

func (s *Seeder) seedBrands() ([]models.Brand, error) {
	brands := make([]models.Brand, 0, len(brandNames))
	for _, name := range brandNames {
		brand := models.Brand{Name: name}
		if err := s.db.Create(&brand).Error; err != nil {
			return nil, fmt.Errorf("creating brand %q: %w", name, err)
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

func (s *Seeder) seedCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := models.Category{Name: name, Slug: service.Slugify(name)}
		if err := s.db.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("creating category %q: %w", name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *Seeder) seedUsers(count int) ([]models.User, error) {
	if count < 1 {
		count = 1
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count+1)

	admin := models.User{
		Email:    "admin@shop.local",
		Password: string(hash),
		FullName: "Quản trị viên",
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("creating admin user: %w", err)
	}
	users = append(users, admin)

	for i := 0; i < count; i++ {
		user := models.User{
			Email:    gofakeit.Email(),
			Password: string(hash),
			FullName: gofakeit.Name(),
			Phone:    gofakeit.Phone(),
			Address:  gofakeit.Address().Address,
			Avatar:   fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
			Role:     models.RoleUser,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedProducts(count int, brands []models.Brand, categories []models.Category, users []models.User) ([]models.Product, error) {
	if count < 1 {
		count = 1
	}
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		brand := brands[s.rng.Intn(len(brands))]
		category := categories[s.rng.Intn(len(categories))]
		name := fmt.Sprintf("%s %s %d",
			brand.Name, productAdjectives[s.rng.Intn(len(productAdjectives))], 100+s.rng.Intn(900))

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        name,
			Slug:        service.Slugify(name),
			Description: gofakeit.Paragraph(1, 3, 8, "\n"),
			// VND price between 300k and 3M, rounded to thousands.
			Price:      int64(300+s.rng.Intn(2700)) * 1000,
			Sold:       int64(s.rng.Intn(500)),
			CategoryID: category.ID,
			BrandID:    brand.ID,
		}
		if err := s.db.Create(&product).Error; err != nil {
			return nil, fmt.Errorf("creating product: %w", err)
		}

		for _, size := range models.SizesVN {
			ps := models.ProductSize{
				ProductID: product.ID,
				Size:      size,
				Quantity:  s.rng.Intn(30),
			}
			if err := s.db.Create(&ps).Error; err != nil {
				return nil, fmt.Errorf("creating product size: %w", err)
			}
		}

		owner := users[s.rng.Intn(len(users))]
		for j := 0; j < 2; j++ {
			image := models.Image{
				Link:   fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
				UserID: owner.ID,
			}
			if err := s.db.Create(&image).Error; err != nil {
				return nil, fmt.Errorf("creating image: %w", err)
			}
			if err := s.db.Exec(
				"INSERT INTO product_feedback_images (product_id, image_id) VALUES (?, ?)",
				product.ID, image.ID,
			).Error; err != nil {
				return nil, fmt.Errorf("linking feedback image: %w", err)
			}
		}

		products = append(products, product)
	}
	return products, nil
}

func (s *Seeder) seedPosts(users []models.User) ([]models.Post, error) {
	posts := make([]models.Post, 0, 5)
	for i := 0; i < 5; i++ {
		author := users[s.rng.Intn(len(users))]
		post := models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(2, 4, 10, "\n"),
			UserID:  author.ID,
		}
		if err := s.db.Create(&post).Error; err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) seedComments(users []models.User, products []models.Product, posts []models.Post) error {
	for _, post := range posts {
		n := s.rng.Intn(3)
		for i := 0; i < n; i++ {
			user := users[s.rng.Intn(len(users))]
			postID := post.ID
			comment := models.Comment{
				Content: gofakeit.Sentence(6 + s.rng.Intn(8)),
				UserID:  user.ID,
				PostID:  &postID,
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return fmt.Errorf("creating post comment: %w", err)
			}
		}
	}
	for _, product := range products {
		n := s.rng.Intn(4)
		for i := 0; i < n; i++ {
			user := users[s.rng.Intn(len(users))]
			productID := product.ID
			comment := models.Comment{
				Content:   gofakeit.Sentence(8 + s.rng.Intn(10)),
				UserID:    user.ID,
				ProductID: &productID,
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
		}
	}
	return nil
}
