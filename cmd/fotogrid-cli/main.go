// fotogrid-cli drives the scanning and tagging backend without the GUI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"fotogrid/internal/backend"
	"fotogrid/internal/tagcache"
)

var (
	cacheDirFlag string
	modelFlag    string
	deps         *cliDeps
)

// cliDeps bundles what the commands need. Construction is injected through
// NewRootCmd so tests can supply a stubbed tagger.
type cliDeps struct {
	svc   *backend.Service
	cache *tagcache.DB
	check func(cmd *cobra.Command) error
}

func cliLogger(msg string) {
	klog.Info("[fotogrid-cli] " + msg)
}

// NewRootCmd creates the root command. getDeps initializes the backend for
// the given cache directory and model; tests inject their own.
func NewRootCmd(getDeps func(cacheDir, model string) (*cliDeps, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fotogrid-cli",
		Short: "Fotogrid CLI - scan folders and generate AI image tags",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			deps, err = getDeps(cacheDirFlag, modelFlag)
			if err != nil {
				return fmt.Errorf("failed to initialize backend: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if deps != nil && deps.cache != nil {
				deps.cache.Close()
			}
		},
	}

	scanCmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List the images in a directory with their cached tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			entries, err := deps.svc.ScanFolder(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No images found.")
				return nil
			}
			for _, e := range entries {
				tags := "(untagged)"
				if len(e.Tags) > 0 {
					tags = strings.Join(e.Tags, ", ")
				}
				cmd.Printf("%s\t%s\t%s\n", e.ID, e.Name, tags)
			}
			return nil
		},
	}
	rootCmd.AddCommand(scanCmd)

	tagCmd := &cobra.Command{
		Use:   "tag [image]",
		Short: "Generate and cache tags for an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			tags, err := deps.svc.GenerateTags(cmd.Context(), imagePath)
			if err != nil {
				return err
			}
			cmd.Println(strings.Join(tags, ", "))
			return nil
		},
	}
	rootCmd.AddCommand(tagCmd)

	describeCmd := &cobra.Command{
		Use:   "describe [image]",
		Short: "Generate and cache a description for an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			description, err := deps.svc.Describe(cmd.Context(), imagePath)
			if err != nil {
				return err
			}
			cmd.Println(description)
			return nil
		},
	}
	rootCmd.AddCommand(describeCmd)

	cachedCmd := &cobra.Command{
		Use:   "cached",
		Short: "List all cached tags and descriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			found := false
			err := deps.cache.Each(func(path string, tags []string, description string) error {
				found = true
				cmd.Printf("%s\n  Tags: %s\n", path, strings.Join(tags, ", "))
				if description != "" {
					cmd.Printf("  Description: %s\n", description)
				}
				return nil
			})
			if err != nil {
				return err
			}
			if !found {
				cmd.Println("Cache is empty.")
			}
			return nil
		},
	}
	rootCmd.AddCommand(cachedCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the Ollama inference server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.check(cmd); err != nil {
				return err
			}
			cmd.Println("Ollama is reachable.")
			return nil
		},
	}
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cachedir", "", "Directory for the annotation cache database")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Vision-language model name (default moondream, or FOTOGRID_MODEL)")

	return rootCmd
}

func main() {
	_ = godotenv.Load()

	getDeps := func(cacheDir, model string) (*cliDeps, error) {
		cache, err := tagcache.Open(cacheDir, cliLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to open annotation cache: %w", err)
		}
		if model == "" {
			model = os.Getenv("FOTOGRID_MODEL")
		}
		tagger, err := backend.NewOllamaTagger(model)
		if err != nil {
			cache.Close()
			return nil, err
		}
		return &cliDeps{
			svc:   backend.NewService(cache, tagger),
			cache: cache,
			check: func(cmd *cobra.Command) error { return tagger.Check(cmd.Context()) },
		}, nil
	}

	rootCmd := NewRootCmd(getDeps)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
