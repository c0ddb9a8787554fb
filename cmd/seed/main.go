package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/tenant"
)

const (
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// schema cria as tabelas do zero. Idempotente: roda de novo sem efeito em
// bancos já provisionados.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS dealers (
		id VARCHAR(12) PRIMARY KEY,
		dealer_code VARCHAR(32) NOT NULL UNIQUE,
		dealer_name VARCHAR(255) NOT NULL,
		city VARCHAR(128) NOT NULL DEFAULT '',
		district VARCHAR(128) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		contact_person VARCHAR(255) NOT NULL DEFAULT '',
		regional_manager VARCHAR(255) NOT NULL DEFAULT '',
		region VARCHAR(128) NOT NULL DEFAULT '',
		tax_number VARCHAR(64) NOT NULL DEFAULT '',
		dealer_type VARCHAR(32) NOT NULL DEFAULT 'authorized',
		status VARCHAR(32) NOT NULL DEFAULT 'inactive',
		fb_page_id VARCHAR(64),
		instagram_actor_id VARCHAR(64),
		sales_url TEXT,
		service_url TEXT,
		additional_emails TEXT[] NOT NULL DEFAULT '{}',
		membership_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		lastname VARCHAR(128) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT FALSE,
		role_id INT NOT NULL DEFAULT 3,
		dealer_id VARCHAR(12) REFERENCES dealers(id),
		deleted BOOLEAN NOT NULL DEFAULT FALSE,
		deleted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_requests (
		id VARCHAR(12) PRIMARY KEY,
		dealer_id VARCHAR(12) NOT NULL REFERENCES dealers(id),
		campaign_name VARCHAR(255) NOT NULL,
		budget NUMERIC(14,2) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		platforms TEXT[] NOT NULL DEFAULT '{}',
		ad_message TEXT NOT NULL DEFAULT '',
		cta_type VARCHAR(32) NOT NULL DEFAULT '',
		website_url TEXT NOT NULL DEFAULT '',
		redirect_type VARCHAR(16) NOT NULL DEFAULT 'sales',
		notes TEXT NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT 'draft',
		fb_push_status VARCHAR(16) NOT NULL DEFAULT '',
		fb_push_error TEXT NOT NULL DEFAULT '',
		fb_campaign_id VARCHAR(64) NOT NULL DEFAULT '',
		fb_adset_id VARCHAR(64) NOT NULL DEFAULT '',
		fb_creative_id VARCHAR(64) NOT NULL DEFAULT '',
		fb_ad_id VARCHAR(64) NOT NULL DEFAULT '',
		fb_pushed_at TIMESTAMPTZ,
		deleted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id VARCHAR(12) PRIMARY KEY,
		campaign_id VARCHAR(12) NOT NULL REFERENCES campaign_requests(id),
		kind VARCHAR(32) NOT NULL,
		message TEXT NOT NULL,
		detail JSONB NOT NULL DEFAULT '{}',
		actor_id INT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS activity_log_campaign_idx ON activity_log (campaign_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS creative_files (
		id VARCHAR(12) PRIMARY KEY,
		campaign_id VARCHAR(12) NOT NULL REFERENCES campaign_requests(id),
		file_name VARCHAR(255) NOT NULL,
		file_type VARCHAR(16) NOT NULL,
		content_type VARCHAR(128) NOT NULL DEFAULT '',
		size_bytes BIGINT NOT NULL DEFAULT 0,
		storage_key TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS budget_plans (
		id VARCHAR(12) PRIMARY KEY,
		dealer_id VARCHAR(12) NOT NULL REFERENCES dealers(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		total_budget NUMERIC(14,2) NOT NULL,
		used_budget NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS incentive_requests (
		id VARCHAR(12) PRIMARY KEY,
		dealer_id VARCHAR(12) NOT NULL REFERENCES dealers(id),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		amount NUMERIC(14,2) NOT NULL,
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'pending_approval',
		admin_note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS visual_requests (
		id VARCHAR(12) PRIMARY KEY,
		dealer_id VARCHAR(12) NOT NULL REFERENCES dealers(id),
		work_request TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		work_details TEXT NOT NULL DEFAULT '',
		intended_message TEXT NOT NULL DEFAULT '',
		legal_text TEXT NOT NULL DEFAULT '',
		deadline DATE NOT NULL,
		creative_types TEXT[] NOT NULL DEFAULT '{}',
		status VARCHAR(32) NOT NULL DEFAULT 'pending_approval',
		assigned_to VARCHAR(20),
		admin_note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	brandFlag := flag.String("brand", "", "marca alvo do seed: ford ou tofas")
	adminEmail := flag.String("admin-email", "admin@dealerops.local", "e-mail do usuário administrador inicial")
	adminPassword := flag.String("admin-password", "", "senha do usuário administrador inicial")
	flag.Parse()

	// Cada marca tem um banco próprio; sem marca explícita o seed não sabe
	// onde escrever e recusa.
	brand, err := tenant.ParseBrand(*brandFlag)
	if err != nil {
		log.Fatalf("ERRO: informe -brand ford ou -brand tofas: %v", err)
	}
	if *adminPassword == "" {
		log.Fatal("ERRO: informe -admin-password")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	dsn := cfg.Databases.FordDSN
	if brand == tenant.BrandTofas {
		dsn = cfg.Databases.TofasDSN
	}

	log.Printf("Conectando ao banco da marca %s...", brand)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	log.Printf("Aplicando schema (%d statements)...", len(schema))
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("ERRO no statement %d do schema: %v", i+1, err)
		}
	}
	log.Println("Schema aplicado com sucesso")

	seedAdmin(db, *adminEmail, *adminPassword)
	seedDemoDealer(db, brand)

	log.Printf("Seed da marca %s concluído em %v!", brand, time.Since(startTime))
}

func seedAdmin(db *sql.DB, email, password string) {
	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		log.Fatalf("ERRO ao verificar usuário administrador: %v", err)
	}
	if exists {
		log.Printf("Usuário administrador %s já existe, pulando", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("ERRO ao gerar hash da senha: %v", err)
	}

	_, err = db.Exec(
		`INSERT INTO users (name, lastname, email, password_hash, active, role_id) VALUES ($1, $2, $3, $4, TRUE, 1)`,
		"Admin", "", email, string(hash),
	)
	if err != nil {
		log.Fatalf("ERRO ao criar usuário administrador: %v", err)
	}
	log.Printf("Usuário administrador %s criado", email)
}

// seedDemoDealer cria um dealer de demonstração com plano de verba vigente,
// útil para subir o ambiente local já navegável.
func seedDemoDealer(db *sql.DB, brand tenant.Brand) {
	code := "DEMO-" + string(brand)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM dealers WHERE dealer_code = $1)`, code).Scan(&exists); err != nil {
		log.Fatalf("ERRO ao verificar dealer de demonstração: %v", err)
	}
	if exists {
		log.Printf("Dealer de demonstração %s já existe, pulando", code)
		return
	}

	dealerID := generateID()
	_, err := db.Exec(
		`INSERT INTO dealers (id, dealer_code, dealer_name, city, email, status, fb_page_id, sales_url, service_url)
		 VALUES ($1, $2, $3, $4, $5, 'active', $6, $7, $8)`,
		dealerID, code, "Dealer Demonstração", "İstanbul",
		"demo-"+string(brand)+"@dealerops.local",
		"100000000000001",
		"https://www.exemplo.com/vendas",
		"https://www.exemplo.com/servico",
	)
	if err != nil {
		log.Fatalf("ERRO ao criar dealer de demonstração: %v", err)
	}

	now := time.Now().UTC()
	planStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	planEnd := planStart.AddDate(0, 3, -1)

	_, err = db.Exec(
		`INSERT INTO budget_plans (id, dealer_id, start_date, end_date, total_budget) VALUES ($1, $2, $3, $4, $5)`,
		generateID(), dealerID, planStart, planEnd, 100000,
	)
	if err != nil {
		log.Fatalf("ERRO ao criar plano de verba de demonstração: %v", err)
	}

	log.Printf("Dealer de demonstração %s criado com plano de verba %s a %s",
		code, planStart.Format("2006-01-02"), planEnd.Format("2006-01-02"))
}
