/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yardimhane/casestore"
	"github.com/yardimhane/casestore/registry"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to a registry YAML file (default: built-in registry)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := casestore.GetVersionInfo()
		fmt.Printf("casestore collections version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	reg, err := loadRegistry(*configFlag)
	if err != nil {
		log.Fatalf("registry validation failed: %v", err)
	}

	fmt.Printf("database: %s\n", reg.Database())
	for _, logical := range reg.Logicals() {
		fmt.Printf("%s:\n", logical)
		for _, prov := range reg.Providers(logical) {
			id, err := reg.Resolve(prov, logical)
			if err != nil {
				log.Fatalf("resolve %s/%s: %v", prov, logical, err)
			}
			fmt.Printf("  %-10s %s\n", prov, id)
		}
	}
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return registry.Parse(data)
}
