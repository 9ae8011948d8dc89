package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: settings store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Settings store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if _, err := ctx.Store.GetSettings(); err != nil {
		fmt.Printf("❌ Settings store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Settings store: OK\n")
	}

	// Check 2: keyring available
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; set RESPIRA_TOKEN instead\n")
	}

	// Check 3: session token present
	if _, err := keyring.GetToken(); err == nil || os.Getenv("RESPIRA_TOKEN") != "" {
		fmt.Printf("✓ Session token: OK\n")
	} else {
		fmt.Printf("⚠ Session token: WARNING\n")
		fmt.Printf("   Not logged in; run 'respira login'\n")
	}

	// Check 4: API reachable with current credentials
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()
	if _, err := ctx.API.Terapeutas(reqCtx); err != nil {
		fmt.Printf("❌ API reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ API reachable: OK (%s)\n", ctx.API.BaseURL())
	}

	// Check 5: no other respira TUI instance
	if n, err := countOtherInstances(); err != nil {
		fmt.Printf("⊘ Concurrent instances: SKIPPED (%v)\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %d other respira process(es) running\n", n)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics found problems.")
		os.Exit(1)
	}
	fmt.Println("All diagnostics passed.")
	return nil
}

func countOtherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	return count, nil
}
