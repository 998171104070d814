package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-argv/argv"
)

// Benchmark a typical mixed command line: a value option, a boolean option
// and two positional arguments. The declared parsers get matching flag
// definitions; go-argv classifies with only "port" registered.

var mixedArgs = []string{"--port", "9000", "--verbose", "input.txt", "output.txt"}

func BenchmarkMixedArgs_GoArgv(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argv.New("port")
		if err := p.Classify(mixedArgs, argv.DefaultMode); err != nil {
			b.Fatal(err)
		}
		_, _ = p.GetInt("port")
		_ = p.Flag("verbose")
	}
}

func BenchmarkMixedArgs_GoArgvPooled(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argv.Acquire()
		p.Register("port")
		if err := p.Classify(mixedArgs, argv.DefaultMode); err != nil {
			b.Fatal(err)
		}
		_, _ = p.GetInt("port")
		_ = p.Flag("verbose")
		argv.Release(p)
	}
}

func BenchmarkMixedArgs_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		port := fs.Int("port", 8080, "Server port")
		verbose := fs.Bool("verbose", false, "Verbose output")
		if err := fs.Parse(mixedArgs); err != nil {
			b.Fatal(err)
		}
		_ = *port
		_ = *verbose
		_ = fs.Args()
	}
}

func BenchmarkMixedArgs_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().Int("port", 8080, "Server port")
		rootCmd.Flags().Bool("verbose", false, "Verbose output")
		rootCmd.SetArgs(mixedArgs)
		if err := rootCmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMixedArgs_Urfave(b *testing.B) {
	args := append([]string{"bench"}, mixedArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark inline name=value handling

var equalsArgs = []string{"--host=0.0.0.0", "--port=9000", "deploy"}

func BenchmarkEqualsArgs_GoArgv(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argv.New()
		if err := p.Classify(equalsArgs, argv.DefaultMode); err != nil {
			b.Fatal(err)
		}
		_, _ = p.Param("host")
		_, _ = p.GetInt("port")
	}
}

func BenchmarkEqualsArgs_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		host := fs.String("host", "localhost", "Server host")
		port := fs.Int("port", 8080, "Server port")
		if err := fs.Parse(equalsArgs); err != nil {
			b.Fatal(err)
		}
		_ = *host
		_ = *port
	}
}

func BenchmarkEqualsArgs_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().String("host", "localhost", "Server host")
		rootCmd.Flags().Int("port", 8080, "Server port")
		rootCmd.SetArgs(equalsArgs)
		if err := rootCmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark tar-style combined short flags (-xvf). Urfave needs
// UseShortOptionHandling for this form; pflag supports it natively.

var multiflagArgs = []string{"-xvf", "archive.tar"}

func BenchmarkMultiflag_GoArgv(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argv.New("f")
		if err := p.Classify(multiflagArgs, argv.DefaultMode|argv.SingleDashMultiflag); err != nil {
			b.Fatal(err)
		}
		_ = p.Flag("x")
		_, _ = p.Param("f")
	}
}

func BenchmarkMultiflag_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		extract := fs.BoolP("extract", "x", false, "Extract")
		verbose := fs.BoolP("verbose", "v", false, "Verbose")
		file := fs.StringP("file", "f", "", "Archive file")
		if err := fs.Parse(multiflagArgs); err != nil {
			b.Fatal(err)
		}
		_ = *extract
		_ = *verbose
		_ = *file
	}
}

func BenchmarkMultiflag_Urfave(b *testing.B) {
	args := append([]string{"bench"}, multiflagArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:                   "bench",
			UseShortOptionHandling: true,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "extract", Aliases: []string{"x"}},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
				&cli.StringFlag{Name: "file", Aliases: []string{"f"}},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}
