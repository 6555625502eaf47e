package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/wtg/internal/bcd"
	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/volume"
)

const (
	planFormatText = "text"
	planFormatYAML = "yaml"
)

// planDocument is the YAML rendering of a plan.
type planDocument struct {
	Version    osversion.Version `yaml:"version"`
	Target     string            `yaml:"target"`
	Store      string            `yaml:"store,omitempty"`
	Directives []string          `yaml:"directives"`
	Tuning     []string          `yaml:"tuning,omitempty"`
}

func newPlanCmd(root *rootOptions) *cobra.Command {
	var (
		volumes volumeFlags
		release string
		format  string
	)
	cmd := &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != planFormatText && format != planFormatYAML {
				return fmt.Errorf(messages.PlanFormatInvalidFmt, format)
			}
			target, err := volume.ParseTarget(volumes.target)
			if err != nil {
				return err
			}
			if release == "" && volumes.source == "" {
				return errors.New(messages.PlanNeedsSource)
			}
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}

			doc := planDocument{Target: target.String()}
			if release != "" {
				doc.Version, err = osversion.ParseVersion(release)
				if err != nil {
					return err
				}
			}
			if volumes.source != "" {
				source, parsedTarget, err := volumes.parsePair()
				if err != nil {
					return err
				}
				target = parsedTarget
				doc.Store = bcd.NewStore(source, a.cfg.BCDEdit.StoreFile).Path()
				if release == "" {
					doc.Version = a.detector().Detect(source)
				}
			}
			doc.Directives = renderDirectives(bcd.Plan(doc.Version, target))
			if a.cfg.Tuning.Enabled {
				doc.Tuning = renderDirectives(bcd.PlanTuning(doc.Version))
			}

			if format == planFormatYAML {
				return writePlanYAML(cmd.OutOrStdout(), doc)
			}
			writePlanText(cmd.OutOrStdout(), doc)
			return nil
		},
	}
	volumes.addSourceRoot(cmd, false)
	volumes.addTarget(cmd, true)
	cmd.Flags().StringVar(&release, "version", "", messages.FlagOSVersion)
	cmd.Flags().StringVar(&format, "format", planFormatText, messages.FlagPlanFormat)
	return cmd
}

func renderDirectives(directives []bcd.Directive) []string {
	out := make([]string, len(directives))
	for i, d := range directives {
		out[i] = d.String()
	}
	return out
}

func writePlanText(out io.Writer, doc planDocument) {
	all := append(append([]string(nil), doc.Directives...), doc.Tuning...)
	_, _ = fmt.Fprintf(out, messages.PlanHeaderFmt, doc.Version, doc.Target, len(all))
	for i, line := range all {
		_, _ = fmt.Fprintf(out, messages.PlanLineFmt, i+1, line)
	}
}

func writePlanYAML(out io.Writer, doc planDocument) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
