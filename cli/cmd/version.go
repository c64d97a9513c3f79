package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/lprof/pkg"
)

// Version prints version information.
type Version struct {
	Verbose bool `help:"Include configuration paths" short:"v"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	fmt.Printf("%s version %s\n", pkg.Name, strings.TrimSpace(pkg.Version))

	if !v.Verbose {
		return nil
	}

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	vars := ktx.Model.Vars()

	if path, ok := vars[ConfigIdentifier]; ok {
		fmt.Printf("config: %s\n", path)
	}

	if path, ok := vars[CacheIdentifier]; ok {
		fmt.Printf("cache:  %s\n", path)
	}

	return nil
}
