package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/classkit"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		themeFlag     string
		widthFlag     int
		envPrefixFlag string
		quietFlag     bool
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "classkit"})

	// newEngine builds the engine shared by every subcommand
	newEngine := func() (*classkit.Engine, error) {
		b := classkit.NewBuilder().WithEnvPrefix(envPrefixFlag)
		if themeFlag != "" {
			b = b.WithFile(themeFlag)
		} else {
			b = b.WithFileDiscovery(classkit.DefaultDiscoveryOptions("classkit"))
		}
		if widthFlag > 0 {
			b = b.WithViewport(classkit.FixedWidth(widthFlag))
		}
		if quietFlag {
			b = b.WithDiagnostics(nil)
		} else {
			b = b.WithDiagnostics(classkit.LogDiagnostics(logger))
		}

		kit, err := b.Build()
		if errors.Is(err, classkit.ErrThemeNotFound) {
			logger.Warn("theme file not found, using defaults", "path", themeFlag)
			err = nil
		}
		return kit, err
	}

	rootCmd := &cobra.Command{
		Use:   "classkit",
		Short: "Resolve utility class keys into style fragments",
		Long: `classkit resolves compact utility class keys against a theme.

Examples:
  classkit resolve bgRed mt_2 textCenter         # Print the fragments
  classkit render --text "hello" bgPrimary p1    # Render text with lipgloss
  classkit --width 400 responsive sm=bgRed md=bgBlue default=bgGray
  classkit --theme ./theme.toml theme            # Dump the merged theme`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "", "Theme file (TOML, YAML or JSON)")
	rootCmd.PersistentFlags().IntVarP(&widthFlag, "width", "w", 0, "Viewport width (default: terminal width)")
	rootCmd.PersistentFlags().StringVarP(&envPrefixFlag, "env-prefix", "e", "CLASSKIT_", "Environment variable prefix for theme overrides")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress diagnostics")

	resolveCmd := &cobra.Command{
		Use:   "resolve <key>...",
		Short: "Print the fragment of each class key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newEngine()
			if err != nil {
				return err
			}
			for _, key := range args {
				f, err := kit.Lookup(key)
				if err != nil {
					fmt.Printf("%-16s (%v)\n", key, err)
					continue
				}
				fmt.Printf("%-16s %s\n", key, f)
			}
			return nil
		},
	}

	var mergeFlag bool
	applyCmd := &cobra.Command{
		Use:   "apply <class>...",
		Short: "Print the fragment list produced by ClassNames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newEngine()
			if err != nil {
				return err
			}
			frags := kit.ClassNames(strings.Join(args, " "))
			if mergeFlag {
				fmt.Println(classkit.MergeFragments(frags...))
				return nil
			}
			for _, f := range frags {
				fmt.Println(f)
			}
			return nil
		},
	}
	applyCmd.Flags().BoolVarP(&mergeFlag, "merge", "m", false, "Merge the fragments into one")

	var textFlag string
	renderCmd := &cobra.Command{
		Use:   "render <class>...",
		Short: "Render text styled by class keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newEngine()
			if err != nil {
				return err
			}
			fmt.Println(kit.Render(args).Render(textFlag))
			return nil
		},
	}
	renderCmd.Flags().StringVar(&textFlag, "text", "classkit", "Text to render")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List dictionary prefixes and custom classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newEngine()
			if err != nil {
				return err
			}
			fmt.Println("Prefixes:")
			for _, p := range kit.Keys() {
				fmt.Printf("  %s\n", p)
			}
			if classes := kit.Theme().Entries(classkit.SectionClasses); len(classes) > 0 {
				fmt.Println("Classes:")
				for _, c := range classes {
					fmt.Printf("  %s\n", c)
				}
			}
			return nil
		},
	}

	var debugFlag bool
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the merged theme as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newEngine()
			if err != nil {
				return err
			}
			if debugFlag {
				fmt.Print(kit.Debug())
				return nil
			}
			return kit.Dump(os.Stdout)
		},
	}
	themeCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false, "Show current values and cache state")

	responsiveCmd := &cobra.Command{
		Use:   "responsive <breakpoint=classes>...",
		Short: "Resolve the classes of the active breakpoint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newEngine()
			if err != nil {
				return err
			}
			byBreakpoint := make(map[string]any, len(args))
			for _, arg := range args {
				name, classes, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid argument %q, expected breakpoint=classes", arg)
				}
				byBreakpoint[name] = strings.Split(classes, ",")
			}
			fmt.Printf("breakpoint: %q\n", kit.Breakpoint())
			for _, f := range kit.Responsive(byBreakpoint) {
				fmt.Println(f)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("classkit %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}

	rootCmd.AddCommand(resolveCmd, applyCmd, renderCmd, keysCmd, themeCmd, responsiveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
