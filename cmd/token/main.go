// Command token issues bearer tokens for AUTH_MODE=bearer deployments.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"finance-control/internal/config"
	"finance-control/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "", "token subject, usually the calling service")
	scopes := flag.String("scopes", services.ScopeLedger, "space or comma separated scopes")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "token: -subject is required")
		os.Exit(2)
	}

	_ = godotenv.Load(".env")
	cfg := config.Load()
	if len(cfg.Auth.HMACSecret) < 32 {
		fmt.Fprintln(os.Stderr, "token: AUTH_HMAC_SECRET must be at least 32 bytes")
		os.Exit(1)
	}

	policy := services.NewBearerTokenPolicy(cfg.Auth.HMACSecret, cfg.Auth.Issuer)
	token, err := policy.IssueToken(*subject, strings.Fields(strings.ReplaceAll(*scopes, ",", " ")), *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
