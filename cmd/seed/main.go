// Siembra una empresa de demostración con sedes, áreas, catálogo e
// inventario realistas. Pensado para entornos locales y de staging:
// borra los datos existentes antes de insertar.
package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/infrastructure/postgres"
	"github.com/medstock/medstock-api/pkg/config"
	"github.com/medstock/medstock-api/pkg/logger"
)

type medSeed struct {
	name        string
	drugCode    string
	isHighAlert bool
	isHazardous bool
	isLASA      bool
}

type supplySeed struct {
	name        string
	description string
}

var medications = []medSeed{
	// Alto riesgo
	{"Insulin (Regular)", "INS001", true, false, false},
	{"Heparin 5000 units/mL", "HEP001", true, false, false},
	{"Morphine 10mg/mL", "MOR001", true, false, false},
	{"Potassium Chloride 20mEq", "KCL001", true, false, false},
	{"Warfarin 5mg", "WAR001", true, false, true},
	// Peligrosos
	{"Chemotherapy: Cisplatin", "CIS001", true, true, false},
	{"Chemotherapy: Doxorubicin", "DOX001", true, true, false},
	{"Methotrexate 25mg", "MTX001", false, true, false},
	// LASA
	{"Hydroxyzine 25mg", "HYD001", false, false, true},
	{"Hydralazine 25mg", "HYD002", false, false, true},
	{"Clonazepam 1mg", "CLO001", false, false, true},
	{"Clonidine 0.1mg", "CLO002", false, false, true},
	// Comunes
	{"Acetaminophen 500mg", "ACE001", false, false, false},
	{"Ibuprofen 600mg", "IBU001", false, false, false},
	{"Lisinopril 10mg", "LIS001", false, false, false},
	{"Metformin 500mg", "MET001", false, false, false},
	{"Amlodipine 5mg", "AML001", false, false, false},
	{"Atorvastatin 20mg", "ATO001", false, false, false},
	{"Omeprazole 20mg", "OME001", false, false, false},
	{"Levothyroxine 50mcg", "LEV001", false, false, false},
	{"Cephalexin 500mg", "CEP001", false, false, false},
	{"Amoxicillin 500mg", "AMO001", false, false, false},
	{"Prednisone 20mg", "PRE001", false, false, false},
	{"Albuterol Inhaler", "ALB001", false, false, false},
}

var supplies = []supplySeed{
	{"Surgical Gloves (Box of 100)", "Latex-free surgical gloves, size M"},
	{"N95 Masks (Box of 20)", "NIOSH-approved N95 respirator masks"},
	{"IV Tubing Set", "Standard IV administration set with roller clamp"},
	{"Syringes 10mL (Pack of 100)", "Sterile disposable syringes"},
	{"Gauze Pads 4x4 (Pack of 200)", "Sterile gauze pads for wound care"},
	{"Medical Tape Roll", "Hypoallergenic medical adhesive tape"},
	{"Alcohol Prep Pads (Box of 100)", "Sterile alcohol preparation pads"},
	{"Bandages Assorted (Box of 50)", "Various sizes of adhesive bandages"},
	{"Thermometer Covers (Box of 100)", "Disposable thermometer probe covers"},
	{"Pulse Oximeter", "Digital pulse oximeter with display"},
	{"Blood Pressure Cuff", "Adult size blood pressure cuff"},
	{"Stethoscope", "Professional stethoscope"},
	{"Surgical Scissors", "Stainless steel surgical scissors"},
	{"Disposable Scalpels (Pack of 10)", "Sterile disposable scalpels"},
	{"Urinalysis Test Strips (Pack of 100)", "10-parameter urine test strips"},
}

var siteSeeds = []struct{ name, address string }{
	{"Main Hospital Campus", "123 Medical Center Drive, Healthcare City, HC 12345"},
	{"Emergency Department", "123 Medical Center Drive, Emergency Wing, HC 12345"},
	{"Outpatient Clinic", "456 Health Plaza, Healthcare City, HC 12346"},
	{"Pediatric Wing", "789 Children's Way, Healthcare City, HC 12347"},
}

var areaNames = []string{"Main Pharmacy", "Emergency Supply Room", "ICU Med Room", "General Storage"}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Limpieza: orden inverso a las FKs.
	for _, table := range []string{"stock_movements", "inventory_records", "items", "stock_areas", "sites", "users", "companies"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpiar tabla")
		}
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	areaRepo := postgres.NewStockAreaRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	now := time.Now().UTC()

	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      "General Hospital System",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(company); err != nil {
		log.Fatal().Err(err).Msg("crear empresa")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	users := []*entity.User{
		{ID: uuid.NewString(), CompanyID: company.ID, Email: "admin@generalhospital.com",
			PasswordHash: string(hash), Name: "Hospital Administrator", Role: entity.RoleAdmin,
			CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), CompanyID: company.ID, Email: "pharmacy@generalhospital.com",
			PasswordHash: string(hash), Name: "Pharmacy Manager", Role: entity.RoleUser,
			CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range users {
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}
	log.Info().Msg("empresa y usuarios creados")

	var areas []*entity.StockArea
	for _, s := range siteSeeds {
		site := &entity.Site{
			ID: uuid.NewString(), CompanyID: company.ID,
			Name: s.name, Address: s.address,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := siteRepo.Create(site); err != nil {
			log.Fatal().Err(err).Str("site", s.name).Msg("crear sede")
		}
		for _, an := range areaNames {
			area := &entity.StockArea{
				ID: uuid.NewString(), SiteID: site.ID, Name: an,
				CreatedAt: now, UpdatedAt: now,
			}
			if err := areaRepo.Create(area); err != nil {
				log.Fatal().Err(err).Str("area", an).Msg("crear área")
			}
			areas = append(areas, area)
		}
	}
	log.Info().Int("sites", len(siteSeeds)).Int("areas", len(areas)).Msg("ubicaciones creadas")

	var items []*entity.Item
	for _, m := range medications {
		item := &entity.Item{
			ID: uuid.NewString(), CompanyID: company.ID,
			Name:        m.name,
			Description: "Prescription medication: " + m.name,
			Type:        entity.ItemTypeMedication,
			DrugCode:    m.drugCode,
			IsHazardous: m.isHazardous,
			IsHighAlert: m.isHighAlert,
			IsLASA:      m.isLASA,
			CreatedAt:   now, UpdatedAt: now,
		}
		if err := itemRepo.Create(item); err != nil {
			log.Fatal().Err(err).Str("item", m.name).Msg("crear medicamento")
		}
		items = append(items, item)
	}
	for _, s := range supplies {
		item := &entity.Item{
			ID: uuid.NewString(), CompanyID: company.ID,
			Name:        s.name,
			Description: s.description,
			Type:        entity.ItemTypeSupply,
			CreatedAt:   now, UpdatedAt: now,
		}
		if err := itemRepo.Create(item); err != nil {
			log.Fatal().Err(err).Str("item", s.name).Msg("crear insumo")
		}
		items = append(items, item)
	}
	log.Info().Int("items", len(items)).Msg("catálogo creado")

	rng := rand.New(rand.NewSource(42)) // siembra reproducible
	records := 0
	for _, area := range areas {
		shuffled := make([]*entity.Item, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		n := rng.Intn(15) + 10 // 10-25 artículos por área
		if n > len(shuffled) {
			n = len(shuffled)
		}
		for _, item := range shuffled[:n] {
			qty, maxCap, threshold := quantitiesFor(item, rng)
			rec := &entity.InventoryRecord{
				ID:               uuid.NewString(),
				ItemID:           item.ID,
				StockAreaID:      area.ID,
				CurrentQuantity:  qty,
				MaxCapacity:      &maxCap,
				ReorderThreshold: &threshold,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
			if err := inventoryRepo.Create(rec); err != nil {
				log.Fatal().Err(err).Str("item", item.Name).Msg("crear registro de inventario")
			}
			records++
		}
	}
	log.Info().Int("records", records).Msg("inventario sembrado")
}

// quantitiesFor genera cantidades realistas según el tipo y las banderas del
// artículo: parte del inventario queda bajo o agotado a propósito.
func quantitiesFor(item *entity.Item, rng *rand.Rand) (qty, maxCap, threshold int64) {
	maxCap = 200
	threshold = 20

	switch {
	case item.IsHighAlert || item.IsHazardous:
		// Controlados: cantidades bajas
		maxCap = 50
		threshold = 10
	case item.Type == entity.ItemTypeSupply:
		maxCap = 1000
		threshold = 100
	}

	switch v := rng.Float64(); {
	case v < 0.1:
		qty = 0
	case v < 0.2:
		qty = threshold / 2
	case v < 0.3:
		qty = threshold
	default:
		qty = rng.Int63n(maxCap-threshold) + threshold
	}
	return qty, maxCap, threshold
}
