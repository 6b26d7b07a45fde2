package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/snp-robotics/motionprofiles/logging"
	"github.com/snp-robotics/motionprofiles/motionplan"
	"github.com/snp-robotics/motionprofiles/motionplan/profiles"
	"github.com/snp-robotics/motionprofiles/utils"
)

const (
	// Flags.
	flagThreads = "threads"
	flagOptions = "options"
	flagDebug   = "debug"
	flagFormat  = "format"

	formatJSON = "json"
	formatYAML = "yaml"
)

func newApp() *cli.App {
	var logger logging.Logger

	return &cli.App{
		Name:  "snp-profiles",
		Usage: "build the motion planning profiles of the scan-and-plan pipeline",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  flagThreads,
				Usage: fmt.Sprintf("number of parallel planner instances; defaults to the host thread count or $%s", utils.NumThreadsEnvVar),
			},
			&cli.StringFlag{
				Name:    flagOptions,
				Aliases: []string{"o"},
				Usage:   "load tuning options from `FILE` (.json, .yaml or .yml)",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			// Logs go to stderr so exported profiles on stdout stay machine readable.
			logger = logging.NewBlankLogger("snp-profiles")
			logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
			if c.Bool(flagDebug) {
				logger.SetLevel(logging.DEBUG)
			} else {
				logger.SetLevel(logging.INFO)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "dump",
				Usage: "print every profile",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagFormat,
						Value: formatJSON,
						Usage: "output format, json or yaml",
					},
				},
				Action: func(c *cli.Context) error {
					dict, err := buildProfiles(c, logger)
					if err != nil {
						return err
					}
					return dumpProfiles(c, dict, c.String(flagFormat))
				},
			},
			{
				Name:  "table",
				Usage: "print a summary of every profile",
				Action: func(c *cli.Context) error {
					dict, err := buildProfiles(c, logger)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, summaryTable(dict))
					return nil
				},
			},
			{
				Name:  "schema",
				Usage: "print the JSON schema of the options file",
				Action: func(c *cli.Context) error {
					out, err := json.MarshalIndent(profiles.OptionsSchema(), "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, string(out))
					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "check an options file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						return errors.New("validate needs an options file")
					}
					if _, err := profiles.LoadOptionsFile(path); err != nil {
						for _, violation := range multierr.Errors(errors.Cause(err)) {
							logger.Errorw("invalid option", "file", path, "error", violation)
						}
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s is valid\n", path)
					return nil
				},
			},
		},
	}
}

// buildProfiles applies the global flags and builds the full dictionary.
func buildProfiles(c *cli.Context, logger logging.Logger) (*profiles.Dictionary, error) {
	opts := profiles.NewDefaultOptions()
	if path := c.String(flagOptions); path != "" {
		var err error
		opts, err = profiles.LoadOptionsFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debugw("loaded options", "file", path)
	}
	if c.IsSet(flagThreads) {
		opts.NumThreads = c.Int(flagThreads)
		if err := opts.Validate(); err != nil {
			return nil, err
		}
	}
	return profiles.NewBuilder(opts, logger).BuildAll(), nil
}

type profileEntry struct {
	Stage   motionplan.StageID `json:"stage" yaml:"stage"`
	Name    string             `json:"name" yaml:"name"`
	Type    string             `json:"type" yaml:"type"`
	Profile any                `json:"profile" yaml:"profile"`
}

func profileEntries(dict *profiles.Dictionary) []profileEntry {
	var entries []profileEntry
	for _, stage := range dict.Stages() {
		for _, name := range dict.Names(stage) {
			for _, profile := range dict.Profiles(stage, name) {
				entries = append(entries, profileEntry{
					Stage:   stage,
					Name:    name,
					Type:    typeName(profile),
					Profile: profile,
				})
			}
		}
	}
	return entries
}

func typeName(v any) string {
	name := fmt.Sprintf("%T", v)
	return name[strings.LastIndex(name, ".")+1:]
}

func dumpProfiles(c *cli.Context, dict *profiles.Dictionary, format string) error {
	entries := profileEntries(dict)
	switch strings.ToLower(format) {
	case formatJSON:
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(out))
	case formatYAML:
		enc := yaml.NewEncoder(c.App.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown format %q, expected %s or %s", format, formatJSON, formatYAML)
	}
	return nil
}

// summaryTable prints one row per profile with the values operators most often tune.
func summaryTable(dict *profiles.Dictionary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Stage", "Name", "Profile", "Summary"})
	for _, entry := range profileEntries(dict) {
		t.AppendRow(table.Row{entry.Stage, entry.Name, entry.Type, summarize(entry.Profile)})
	}
	return t.Render()
}

func summarize(profile any) string {
	switch p := profile.(type) {
	case profiles.SimplePlannerLVSPlanProfile:
		return fmt.Sprintf("state %.1f°, translation %.3f, rotation %.1f°, min steps %d",
			utils.RadToDeg(p.StateLongestValidSegmentLength),
			p.TranslationLongestValidSegmentLength,
			utils.RadToDeg(p.RotationLongestValidSegmentLength),
			p.MinSteps)
	case profiles.OMPLPlanProfile:
		ranges := make([]string, 0, len(p.Planners))
		for _, planner := range p.Planners {
			ranges = append(ranges, fmt.Sprintf("%.3f", planner.Range))
		}
		return fmt.Sprintf("%d x %s, %.0fs, ranges [%s]",
			len(p.Planners), profiles.RRTConnect, p.PlanningTime, strings.Join(ranges, " "))
	case profiles.DescartesPlanProfile:
		return fmt.Sprintf("%d threads, %d samples per pose, vertex check %s, edge check %t",
			p.NumThreads, motionplan.ToolZSampleCount(p.SamplerResolution),
			p.VertexCollisionCheckConfig.Type, p.EnableEdgeCollision)
	case profiles.TrajOptPlanProfile:
		return fmt.Sprintf("cartesian %v, %s", p.CartesianCoeff, p.TermType)
	case profiles.TrajOptCompositeProfile:
		return fmt.Sprintf("smoothing v/a/j %v/%v/%v, collision cost %s margin %.3f",
			first(p.Smoothing.Velocity), first(p.Smoothing.Acceleration), first(p.Smoothing.Jerk),
			p.CollisionCostConfig.Evaluator, p.CollisionCostConfig.SafetyMargin)
	}
	return ""
}

func first(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}
