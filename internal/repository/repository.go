package repository

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/stitchworks/machine-log-backend/config"
)

// DB wraps the primary connection plus any number of read replicas. Writes
// always go to the primary; reads rotate round-robin across every
// connection. Report computations are deterministic regardless of which
// replica served the snapshot, so the rotation lives entirely out here.
type DB struct {
	primary  *sqlx.DB
	replicas []*sqlx.DB
	next     atomic.Uint64
}

func NewDB(cfg config.DatabaseConfig) (*DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	primary, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		log.Println("❌ Error connecting to database:", err)
		return nil, err
	}
	tunePool(primary)

	db := &DB{primary: primary}

	for _, dsn := range cfg.ReplicaDSNs {
		replica, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			log.Println("⚠️ Skipping unreachable read replica:", err)
			continue
		}
		tunePool(replica)
		db.replicas = append(db.replicas, replica)
	}

	log.Printf("✅ Connected to database (%d read replicas)", len(db.replicas))

	return db, nil
}

func tunePool(db *sqlx.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// Primary returns the write connection.
func (d *DB) Primary() *sqlx.DB {
	return d.primary
}

// Read returns the next connection in the rotation, primary included.
func (d *DB) Read() *sqlx.DB {
	pool := make([]*sqlx.DB, 0, len(d.replicas)+1)
	pool = append(pool, d.primary)
	pool = append(pool, d.replicas...)

	n := d.next.Add(1)
	return pool[int(n-1)%len(pool)]
}

func (d *DB) Close() error {
	for _, replica := range d.replicas {
		replica.Close()
	}
	return d.primary.Close()
}
