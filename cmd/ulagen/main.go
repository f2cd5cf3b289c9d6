// ===== cmd/ulagen/main.go =====
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"ulagen/internal/config"
	"ulagen/internal/iface"
	"ulagen/internal/ntp"
	"ulagen/internal/oui"
	"ulagen/internal/ula"
	"ulagen/internal/web"
	"ulagen/pkg/utils"
)

// fetchTimeout bounds a single registry download; the published
// registry is a few megabytes of text
const fetchTimeout = 60 * time.Second

var (
	sha1ver   string
	buildTime string
)

var cli struct {
	MAC       string `short:"m" help:"MAC address to derive the prefix from (auto-detected when omitted)."`
	Iface     string `help:"Read the MAC address from this network interface."`
	Time      string `short:"t" help:"Literal 64-bit NTP timestamp, 16 hex digits (dot-delimited form accepted)."`
	NTPServer string `name:"ntp-server" help:"NTP server to query for the timestamp (default: system clock)."`
	Registry  string `help:"Path to the cached IEEE OUI registry file."`
	Fetch     bool   `help:"Download a fresh registry copy before generating."`
	Compress  bool   `help:"Render the prefix in compressed RFC 5952 form instead of fixed width."`
	Verbose   bool   `short:"v" help:"Print the validated MAC, vendor, timestamp and EUI-64 to stderr."`
	Listen    string `help:"Run as an HTTP service on this address instead of a one-shot generation."`
	Config    string `help:"Configuration file." default:"ulagen.ini"`
	Version   bool   `help:"Show version, then exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("ulagen"),
		kong.Description("Generate an RFC 4193 IPv6 unique local address prefix from a MAC address and an NTP timestamp."))

	if cli.Version {
		fmt.Printf("ulagen %s (built %s)\n", sha1ver, buildTime)
		return
	}

	cfg, err := config.New(cli.Config)
	utils.CheckFatal(err, "Failed to load configuration")
	if cli.Registry != "" {
		cfg.RegistryFile = cli.Registry
	}
	if cli.NTPServer != "" {
		cfg.NTPServer = cli.NTPServer
	}
	if cli.Listen != "" {
		cfg.HTTPListen = cli.Listen
	}
	if cli.Compress {
		cfg.Compress = true
	}

	if cli.Fetch || fileMissing(cfg.RegistryFile) {
		if err := oui.Fetch(cfg.RegistryURL, cfg.RegistryFile, fetchTimeout); err != nil {
			log.Fatalf("%v", err)
		}
	}

	store, err := oui.NewStore(cfg.RegistryFile)
	utils.CheckFatal(err, "Failed to load OUI registry")

	var source ula.TimeSource
	switch {
	case cli.Time != "":
		source = &ntp.LiteralSource{Value: cli.Time}
	case cfg.NTPServer != "":
		source = &ntp.QuerySource{
			Server:  cfg.NTPServer,
			Timeout: time.Duration(cfg.NTPTimeout) * time.Second,
		}
	default:
		source = ntp.ClockSource{}
	}

	gen := &ula.Generator{Time: source, Vendors: store, Compress: cfg.Compress}

	if cli.Listen != "" {
		runServer(cfg, gen, store)
		return
	}

	mac := cli.MAC
	if mac == "" {
		mac, err = iface.Detect(cli.Iface)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("Using hardware address %s", mac)
	}

	res, err := gen.Generate(mac)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cli.Verbose {
		log.Printf("MAC address:   %s (%s)", res.MAC, res.Vendor)
		log.Printf("NTP timestamp: %s", res.Timestamp)
		log.Printf("EUI-64:        %s", res.EUI64)
		log.Printf("Global ID:     %s", res.GlobalID)
	}

	// The prefix is the only thing written to stdout.
	fmt.Println(res.ULA)
}

// runServer starts the HTTP service with registry hot-reload and blocks
// until interrupted
func runServer(cfg *config.Config, gen *ula.Generator, store *oui.Store) {
	watcher, err := oui.NewWatcher(store)
	if err != nil {
		log.Fatalf("Failed to create registry watcher: %v", err)
	}
	if err := watcher.Start(); err != nil {
		log.Fatalf("Failed to start registry watcher: %v", err)
	}
	defer watcher.Stop()

	server := web.NewServer(cfg, gen, store)
	go func() {
		log.Printf("Starting HTTP server on %s", cfg.HTTPListen)
		if err := server.Start(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
}

// fileMissing reports whether the path does not exist
func fileMissing(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
