package cmd

import (
	"fmt"
	"os"

	"github.com/rick-howell/ricklib/wav"
	"github.com/spf13/cobra"
)

var (
	toneOut     string
	toneFreq    float64
	toneSeconds float64
	toneRate    int
	toneDepth   int
	toneStereo  bool
)

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Generate a sine test-tone WAV file",
	Args:  cobra.NoArgs,
	RunE:  runTone,
}

func init() {
	toneCmd.Flags().StringVarP(&toneOut, "out", "o", "tone.wav", "output file")
	toneCmd.Flags().Float64Var(&toneFreq, "freq", 400, "frequency in Hz")
	toneCmd.Flags().Float64Var(&toneSeconds, "seconds", 2, "duration in seconds")
	toneCmd.Flags().IntVar(&toneRate, "rate", wav.DefaultSampleRate, "sample rate")
	toneCmd.Flags().IntVar(&toneDepth, "depth", wav.DefaultBitDepth, "bit depth (16, 24 or 32)")
	toneCmd.Flags().BoolVar(&toneStereo, "stereo", false, "write two identical channels")
	rootCmd.AddCommand(toneCmd)
}

func runTone(_ *cobra.Command, _ []string) error {
	samples := wav.Tone(toneFreq, toneSeconds, toneRate)
	cfg := wav.Config{SampleRate: toneRate, BitDepth: toneDepth, Channels: wav.Mono}
	if toneStereo {
		samples = wav.Mono2Stereo(samples)
		cfg.Channels = wav.Stereo
	}
	logVerbose("%g Hz, %gs, %d-bit, %d channel(s)", toneFreq, toneSeconds, cfg.BitDepth, cfg.Channels)
	if err := wav.Export(toneOut, samples, cfg); err != nil {
		return err
	}
	info, err := os.Stat(toneOut)
	if err != nil {
		return err
	}
	fmt.Printf("  %s  %s\n", toneOut, formatBytes(info.Size()))
	return nil
}
