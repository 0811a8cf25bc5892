package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"nickelodeon"
)

// AppConfig is the shape this example materializes from Nickel.
type AppConfig struct {
	Server struct {
		Host    string        `nickel:"host"`
		Port    int           `nickel:"port"`
		Timeout time.Duration `nickel:"timeout"`
	} `nickel:"server"`
	FeatureFlags map[string]bool `nickel:"feature_flags"`
}

const configSource = `{
  server = {
    host = "localhost",
    port = 8080,
    timeout = "30s",
  },
  feature_flags = {
    new_dashboard = true,
  },
}
`

func main() {
	log.Println("➡️  Candidate locations probed for codename \"example_app\":")
	for _, candidate := range nickelodeon.Candidates("example_app") {
		log.Printf("   %s", candidate)
	}

	if _, err := exec.LookPath("nickel"); err != nil {
		log.Println("nickel binary not found on PATH; skipping the load demo")
		return
	}

	// Drop a config file into the project-local tier (./.example_app/).
	dir := filepath.Join(".", ".example_app")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.ncl")
	if err := os.WriteFile(path, []byte(configSource), 0o644); err != nil {
		log.Fatal(err)
	}

	cfg, err := nickelodeon.Load[AppConfig]("example_app", "")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("host:    %s\n", cfg.Server.Host)
	fmt.Printf("port:    %d\n", cfg.Server.Port)
	fmt.Printf("timeout: %s\n", cfg.Server.Timeout)
	fmt.Printf("flags:   %v\n", cfg.FeatureFlags)

	// An application with no configuration anywhere simply gets the zero
	// value back.
	unconfigured, err := nickelodeon.Load[AppConfig]("no_such_app", "")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("unconfigured host is empty: %q\n", unconfigured.Server.Host)
}
