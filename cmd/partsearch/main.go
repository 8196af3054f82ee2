package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ar90n/partsearch/collection"
	"github.com/ar90n/partsearch/partition"
	"github.com/ar90n/partsearch/search"
	"github.com/ar90n/partsearch/verify"
)

var log = logrus.WithField("component", "cli")

var errNotPartitioned = errors.New("input is not sorted around the value")

func readInput(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func readInts(c *cli.Context) ([]int, error) {
	text, err := readInput(c)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(text)
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}

func before(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	c.App.Metadata = map[string]interface{}{configKey: cfg}

	level, err := logrus.ParseLevel(stringSetting(c, "log-level", cfg.LogLevel))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetOutput(c.App.ErrWriter)
	logrus.SetLevel(level)
	return nil
}

func partitionAction(c *cli.Context) error {
	pivots := []rune(c.String("pivot"))
	if len(pivots) != 1 {
		return errors.Newf("pivot must be a single character, got %q", c.String("pivot"))
	}
	pivot := pivots[0]

	text, err := readInput(c)
	if err != nil {
		return err
	}

	runes := collection.Slice[rune](text)
	p := collection.Match(func(r rune) bool { return pivot <= r })

	var boundary int
	if c.Bool("forward") {
		boundary, err = partition.Partition[int, rune](collection.ForwardOnly[int, rune](runes), p)
	} else {
		boundary, err = partition.PartitionBidirectional[int, rune](runes, p)
	}
	if err != nil {
		return err
	}

	ok, err := partition.IsPartitioned[int, rune](runes, p)
	if err != nil {
		return err
	}
	if !ok {
		return errors.AssertionFailedf("partition of %q left it unpartitioned", text)
	}
	log.WithFields(logrus.Fields{
		"length":   len(runes),
		"boundary": boundary,
		"forward":  c.Bool("forward"),
	}).Debug("partitioned")

	fmt.Fprintf(c.App.Writer, "boundary=%d\n%s\n", boundary, string(runes))
	return nil
}

func searchAction(c *cli.Context) error {
	values, err := readInts(c)
	if err != nil {
		return err
	}
	value := c.Int("value")
	s := collection.Slice[int](values)
	less := collection.Order(func(a, b int) bool { return a < b })

	ok, err := partition.IsPartitioned[int, int](s, collection.Match(func(x int) bool { return value <= x }))
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errNotPartitioned, "value %d", value)
	}

	w := c.App.Writer
	switch op := c.String("op"); op {
	case "lower":
		i, err := search.LowerBound[int, int](s, value, less)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, i)
	case "upper":
		i, err := search.UpperBound[int, int](s, value, less)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, i)
	case "point":
		i, err := search.PartitionPoint[int, int](s, collection.Match(func(x int) bool { return value <= x }))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, i)
	case "find":
		i, found, err := search.BinarySearch[int, int](s, value, less)
		if err != nil {
			return err
		}
		if found {
			fmt.Fprintf(w, "found at %d\n", i)
		} else {
			fmt.Fprintf(w, "not found, insert at %d\n", i)
		}
	case "range":
		r, err := search.EqualRange[int, int](s, value, less)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "[%d, %d)\n", r.Lo, r.Hi)
	default:
		return errors.Newf("unknown op: %s", op)
	}
	return nil
}

func verifyAction(c *cli.Context) error {
	cfg := configFrom(c)

	seed := c.Int64("seed")
	if !c.IsSet("seed") && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	report := verify.NewRunner().
		SetTrials(intSetting(c, "trials", cfg.Trials)).
		SetMaxLen(intSetting(c, "max-len", cfg.MaxLen)).
		SetMaxValue(intSetting(c, "max-value", cfg.MaxValue)).
		SetSeed(seed).
		SetWorkers(intSetting(c, "workers", cfg.Workers)).
		SetMaxFailures(intSetting(c, "max-failures", cfg.MaxFailures)).
		Run(c.Context)

	w := c.App.Writer
	for _, f := range report.Failures {
		fmt.Fprintf(w, "trial %d %s: %v\n", f.Trial, f.Check, f.Err)
	}
	fmt.Fprintf(w, "trials=%d failures=%d\n", report.Trials, len(report.Failures))
	if !report.OK() {
		return errors.Newf("%d property violations", len(report.Failures))
	}
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "partsearch",
		HelpName: "partsearch",
		Usage:    "partition and binary-search sequences",
		Before:   before,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "yaml file with default settings",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "partition",
				Usage:     "partition the characters of a text around a pivot",
				UsageText: "partsearch partition [command options] [text]",
				Action:    partitionAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "pivot",
						Value: "j",
						Usage: "characters ordered at or after the pivot go last",
					},
					&cli.BoolFlag{
						Name:  "forward",
						Usage: "use the single forward cursor strategy",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "search a sorted list of integers",
				UsageText: "partsearch search [command options] [ints...]",
				Action:    searchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "op",
						Value: "find",
						Usage: "lower, upper, point, find or range",
					},
					&cli.IntFlag{
						Name:     "value",
						Required: true,
						Usage:    "value to search for",
					},
				},
			},
			{
				Name:      "verify",
				Usage:     "check the algorithms on random inputs",
				UsageText: "partsearch verify [command options]",
				Action:    verifyAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "trials",
						Value: 1000,
						Usage: "number of random inputs",
					},
					&cli.IntFlag{
						Name:  "max-len",
						Value: 64,
						Usage: "maximum input length",
					},
					&cli.IntFlag{
						Name:  "max-value",
						Value: 32,
						Usage: "elements are drawn from [0, max-value)",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
						Usage: "random seed",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 0,
						Usage: "concurrent trials, 0 for one per CPU",
					},
					&cli.IntFlag{
						Name:  "max-failures",
						Value: 0,
						Usage: "stop after this many failures, 0 for no limit",
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
