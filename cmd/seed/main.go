package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"blockpharma.backend/internal/config"
	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/infrastructure/datasources/postgres"
	"blockpharma.backend/internal/infrastructure/repositories"
	"blockpharma.backend/pkg/crypto"
	"blockpharma.backend/pkg/utils"
)

const demoWallet = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

var openSeedDB = func(cfg config.DatabaseConfig) (*gorm.DB, io.Closer, error) {
	sqlDB, err := postgres.NewConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	db, err := postgres.NewGormDB(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return db, sqlDB, nil
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	open    func(cfg config.DatabaseConfig) (*gorm.DB, io.Closer, error)
	out     io.Writer
}

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		open:    openSeedDB,
		out:     os.Stdout,
	}
}

type demoUser struct {
	email string
	first string
	last  string
	role  entities.UserRole
}

var demoUsers = []demoUser{
	{email: "admin@blockpharma.io", first: "Platform", last: "Admin", role: entities.UserRoleAdmin},
	{email: "pharmacy@blockpharma.io", first: "Neha", last: "Bisht", role: entities.UserRolePharmacy},
	{email: "supplier@blockpharma.io", first: "Arjun", last: "Negi", role: entities.UserRoleSupplier},
}

func runSeed(args []string, deps seedDeps) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(deps.out)
	password := fs.String("password", "BlockPharma@123", "password for every demo account")
	migrate := fs.Bool("migrate", true, "create or update tables before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(*password) < 6 {
		return fmt.Errorf("--password must be at least 6 characters")
	}

	if err := deps.loadEnv(); err != nil {
		fmt.Fprintln(deps.out, "No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	db, closer, err := deps.open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect db: %w", err)
	}
	defer closer.Close()

	if *migrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
	}
	return seed(context.Background(), db, *password, deps.out)
}

// seed inserts the demo accounts and their businesses in one transaction.
// Accounts that already exist are left untouched.
func seed(ctx context.Context, db *gorm.DB, password string, out io.Writer) error {
	users := repositories.NewUserRepository(db)
	taken, err := users.EmailTaken(ctx, demoUsers[0].email)
	if err != nil {
		return err
	}
	if taken {
		fmt.Fprintln(out, "demo data already present, nothing to do")
		return nil
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	return repositories.NewUnitOfWork(db).Do(ctx, func(ctx context.Context) error {
		created := make(map[entities.UserRole]*entities.User, len(demoUsers))
		for _, du := range demoUsers {
			u := &entities.User{
				ID:                 utils.GenerateUUIDv7(),
				FirstName:          du.first,
				LastName:           du.last,
				Email:              du.email,
				PasswordHash:       hash,
				Role:               du.role,
				WalletAddress:      demoWallet,
				IsProfileCompleted: true,
			}
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("create %s: %w", du.email, err)
			}
			created[du.role] = u
			fmt.Fprintf(out, "user %-26s %-9s %s\n", du.email, du.role, u.ID)
		}

		outlet := &entities.PharmacyOutlet{
			ID:           utils.GenerateUUIDv7(),
			OwnerID:      created[entities.UserRolePharmacy].ID,
			BusinessName: "Doon Care Pharmacy",
			Email:        "outlet@doon-care.in",
			GSTIN:        "05AAACD1234E1Z5",
			PhoneNumber:  "9412055501",
			Street:       "Rajpur Road",
			City:         "Dehradun",
			State:        "Uttarakhand",
			Pincode:      "248001",
			IsActive:     true,
		}
		if err := repositories.NewPharmacyOutletRepository(db).Create(ctx, outlet); err != nil {
			return fmt.Errorf("create outlet: %w", err)
		}
		fmt.Fprintf(out, "outlet %s %s\n", outlet.BusinessName, outlet.ID)

		org := &entities.VendorOrganization{
			ID:           utils.GenerateUUIDv7(),
			OwnerID:      created[entities.UserRoleSupplier].ID,
			BusinessName: "Garhwal Pharma Distributors",
			Email:        "sales@garhwalpharma.in",
			GSTIN:        "05AAGCG5678F1Z2",
			PhoneNumber:  "9837012345",
			Street:       "Haridwar Bypass",
			City:         "Dehradun",
			State:        "Uttarakhand",
			Pincode:      "248002",
			IsActive:     true,
		}
		if err := repositories.NewVendorOrganizationRepository(db).Create(ctx, org); err != nil {
			return fmt.Errorf("create organization: %w", err)
		}
		fmt.Fprintf(out, "organization %s %s\n", org.BusinessName, org.ID)

		products := []*entities.Product{
			{Name: "Paracetamol 500mg", Brand: "Crocin", Category: "Analgesic", Unit: "strip of 15"},
			{Name: "Amoxicillin 250mg", Brand: "Mox", Category: "Antibiotic", Unit: "strip of 10"},
			{Name: "Cetirizine 10mg", Brand: "Okacet", Category: "Antihistamine", Unit: "strip of 10"},
			{Name: "ORS Powder", Brand: "Electral", Category: "Rehydration", Unit: "sachet"},
		}
		for _, p := range products {
			p.ID = utils.GenerateUUIDv7()
			p.VendorOrgID = org.ID
		}
		if err := repositories.NewProductRepository(db).CreateBatch(ctx, products); err != nil {
			return fmt.Errorf("create products: %w", err)
		}
		fmt.Fprintf(out, "products %d\n", len(products))
		return nil
	})
}

func main() {
	if err := runSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
