package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mikenye/polyclip2d"
	"github.com/mikenye/polyclip2d/options"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:        "polyclip",
		Usage:       "Computes boolean operations (union, intersection, difference, xor) on 2D polygons",
		HideVersion: true,
		Authors:     []any{"https://github.com/mikenye"},
		Commands: []*cli.Command{
			operationCommand("union", "Computes the union of two polygons", polyclip2d.Union),
			operationCommand("intersection", "Computes the intersection of two polygons", polyclip2d.Intersection),
			operationCommand("difference", "Computes the difference (subject - clip) of two polygons", polyclip2d.Difference),
			operationCommand("xor", "Computes the symmetric difference of two polygons", polyclip2d.Xor),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// booleanOp is the shape every public polyclip2d entry point shares.
type booleanOp func(subject, clip polyclip2d.Polygon, opts ...options.GeometryOptionsFunc) polyclip2d.BooleanResult

// operationCommand builds the CLI subcommand for one boolean operation: it
// loads --subject and --clip polygon files, runs op, and writes the result
// polygon to --out (default stdout, JSON).
func operationCommand(name, usage string, op booleanOp) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "subject",
				Usage:    "Path to the subject polygon file (.json, .yaml, or .yml)",
				Aliases:  []string{"s"},
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "clip",
				Usage:    "Path to the clip polygon file (.json, .yaml, or .yml)",
				Aliases:  []string{"c"},
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Path to write the result polygon (\"-\" for stdout)",
				Aliases:  []string{"o"},
				OnlyOnce: true,
				Value:    "-",
			},
			&cli.StringFlag{
				Name:     "render",
				Usage:    "Optional path to also write an SVG rendering of the result",
				OnlyOnce: true,
			},
			&cli.Float64Flag{
				Name:     "epsilon",
				Usage:    "Snap near-integer coordinates (input and output) within this tolerance to whole numbers",
				OnlyOnce: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			epsilon := cmd.Float64("epsilon")

			subject, err := loadPolygon(cmd.String("subject"))
			if err != nil {
				return err
			}
			subject = snapPolygon(subject, epsilon)

			clip, err := loadPolygon(cmd.String("clip"))
			if err != nil {
				return err
			}
			clip = snapPolygon(clip, epsilon)

			result := op(subject, clip, options.WithEpsilon(epsilon))

			if err := savePolygon(cmd.String("out"), result.Polygon); err != nil {
				return err
			}

			if renderPath := cmd.String("render"); renderPath != "" {
				if err := renderSVG(renderPath, result.Polygon); err != nil {
					return fmt.Errorf("rendering %s: %w", renderPath, err)
				}
			}

			return nil
		},
	}
}
