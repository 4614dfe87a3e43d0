// soyinvoke is a tool to generate Java invocation builders from Soy
// template signature files.
package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gosoy/sauce/javagen"
	"github.com/gosoy/sauce/template"
)

var log = logrus.New()

// config mirrors the command line flags.  Flags given explicitly win over
// the config file.
type config struct {
	Out     string `yaml:"out"`
	Package string `yaml:"package"`
	Globals string `yaml:"globals"`
}

var (
	configFile  string
	outDir      string
	javaPackage string
	globalsFile string
	verbose     bool
	cfg         config
)

var rootCmd = &cobra.Command{
	Use:   "soyinvoke",
	Short: "Generate Java invocation builders from Soy template signatures",
	Long: `soyinvoke reads Soy template signature files (*.soyh) and writes one Java
source file per input, containing type-safe invocation builders for the
templates it declares.

Inputs may be files or directories.  Input directories are recursively
searched for *.soyh files.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var generateCmd = &cobra.Command{
	Use:   "generate <input>...",
	Short: "Write builder classes for the given signature files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

var watchCmd = &cobra.Command{
	Use:   "watch <input>...",
	Short: "Write builder classes, and rewrite them whenever an input changes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	cobra.OnInitialize(initConfig)
	var flags = rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default soyinvoke.yaml, if present)")
	flags.StringVarP(&outDir, "out", "o", ".", "directory to write the generated sources to")
	flags.StringVar(&javaPackage, "package", "", "Java package for the generated classes (default: the file namespace)")
	flags.StringVar(&globalsFile, "globals", "", "file of globals referenced by parameter defaults")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// initConfig reads the config file, if one was named or soyinvoke.yaml
// exists in the working directory.
func initConfig() {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	var name, explicit = configFile, true
	if name == "" {
		name, explicit = "soyinvoke.yaml", false
	}
	content, err := os.ReadFile(name)
	if err != nil {
		if explicit {
			log.WithError(err).Fatal("could not read config file")
		}
		return
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		log.WithError(err).Fatalf("could not parse %s", name)
	}
	log.WithField("file", name).Debug("loaded config")
}

func applyConfig(cmd *cobra.Command) {
	if !cmd.Flags().Changed("out") && cfg.Out != "" {
		outDir = cfg.Out
	}
	if !cmd.Flags().Changed("package") && cfg.Package != "" {
		javaPackage = cfg.Package
	}
	if !cmd.Flags().Changed("globals") && cfg.Globals != "" {
		globalsFile = cfg.Globals
	}
}

func newBundle(args []string, watch bool) *javagen.Bundle {
	var bundle = javagen.NewBundle().WatchFiles(watch)
	if globalsFile != "" {
		bundle.AddGlobalsFile(globalsFile)
	}
	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			bundle.AddHeaderDir(arg)
		} else {
			bundle.AddHeaderFile(arg)
		}
	}
	return bundle
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyConfig(cmd)
	var registry, err = newBundle(args, false).Compile()
	if err != nil {
		return err
	}
	return writeAll(registry)
}

func runWatch(cmd *cobra.Command, args []string) error {
	applyConfig(cmd)
	var bundle = newBundle(args, true).
		SetRecompilationCallback(func(registry *template.Registry) {
			if err := writeAll(registry); err != nil {
				log.WithError(err).Error("regeneration failed")
			}
		})
	var registry, err = bundle.Compile()
	if err != nil {
		return err
	}
	if err := writeAll(registry); err != nil {
		return err
	}
	log.Info("watching for changes")
	select {}
}

// writeAll generates one .java file under the output directory for each
// signature file in the registry.
func writeAll(registry *template.Registry) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	var gen = javagen.NewGenerator(registry).
		WithOptions(javagen.Options{JavaPackage: javaPackage})
	for _, file := range registry.SoyFiles {
		var path = filepath.Join(outDir, javagen.ClassName(file.Name)+".java")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = gen.WriteFile(f, file.Name)
		if e := f.Close(); err == nil {
			err = e
		}
		if err != nil {
			return err
		}
		log.WithField("class", path).Info("generated")
	}
	return nil
}
