// Command hhvm-astcheck verifies that the grammar manifest matches the
// compiled AST definitions. The traversal's per-field hook inventory is
// written against one grammar version; run this after editing either
// side to catch drift before it silently skips a field.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/akjkmeagabase/hhvm/internal/grammar"
)

var (
	manifestPath string
	constraint   string
	watch        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "hhvm-astcheck",
	Short: "Verify the grammar manifest against the compiled AST",
	Long: `hhvm-astcheck loads the grammar manifest, checks that its version is
one the compiled hook inventory supports, and compares the declared
per-kind recursive field sets against the compiled node structs.

With --watch it keeps running and re-verifies whenever the manifest
changes on disk.`,
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&manifestPath, "grammar", "g", "grammar.toml", "path to the grammar manifest")
	rootCmd.Flags().StringVar(&constraint, "supported", grammar.SupportedConstraint, "semver range of supported grammar versions")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run verification when the manifest changes")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := check(); err != nil {
		if !watch {
			return err
		}
		logrus.WithError(err).Error("verification failed")
	}

	if !watch {
		return nil
	}
	return watchManifest()
}

// check runs one full verification of the manifest on disk.
func check() error {
	m, err := grammar.Load(manifestPath)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"manifest": manifestPath,
		"version":  m.Version,
	})

	if err := m.CheckVersion(constraint); err != nil {
		return err
	}
	if err := m.Verify(); err != nil {
		return fmt.Errorf("grammar drift detected: %w", err)
	}

	log.Info("grammar manifest matches the compiled AST")
	return nil
}

// watchManifest blocks, re-running check whenever the manifest changes.
// The parent directory is watched because editors typically replace the
// file instead of writing it in place.
func watchManifest() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(manifestPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(manifestPath), err)
	}
	logrus.WithField("manifest", manifestPath).Info("watching for changes")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(manifestPath) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logrus.WithField("event", ev.Op.String()).Debug("manifest changed")
			if err := check(); err != nil {
				logrus.WithError(err).Error("verification failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("watch error")
		case <-sig:
			logrus.Info("stopping")
			return nil
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("astcheck failed")
	}
}
