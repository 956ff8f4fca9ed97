package main

import (
	"context"
	"flag"

	"tvshow_admin/internal/config"
	"tvshow_admin/internal/db"
	"tvshow_admin/internal/logging"
	"tvshow_admin/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	var envPath string
	flag.StringVar(&envPath, "env", "admin.env", "File to write the admin user ID to (overwritten)")
	flag.Parse()

	cfg := config.LoadConfig()
	logging.Setup(cfg.IsProd)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("%v", err)
	}

	res, err := seed.Run(context.Background(), gdb)
	if err != nil {
		logrus.Fatalf("failed to seed database: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"users":    len(res.Users),
		"series":   len(res.Series),
		"seasons":  len(res.Seasons),
		"episodes": len(res.Episodes),
		"payments": len(res.Payments),
	}).Info("Database populated with demo data")

	admin, ok := res.Admin()
	if !ok {
		logrus.Warn("Admin user not found")
		return
	}
	if err := seed.WriteAdminEnv(envPath, admin.ID); err != nil {
		logrus.Fatalf("failed to write %s: %v", envPath, err)
	}
	logrus.Infof("Admin user ID written to %s", envPath)
}
