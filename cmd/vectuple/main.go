package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vectuple/vectuple/engine"
	"github.com/vectuple/vectuple/nearest"
	"github.com/vectuple/vectuple/store"
	"github.com/vectuple/vectuple/tuple"
)

func main() {
	var (
		t1Arg       string
		t2Arg       string
		fieldsArg   string
		degrees     bool
		ignoreEmpty bool
		dbPath      string
		name        string
		k           int
	)

	t1Flag := &cli.StringFlag{
		Name:        "t1",
		Usage:       "First tuple, comma-separated components (e.g. \"1,2,3\")",
		Destination: &t1Arg,
		Required:    true,
	}
	t2Flag := &cli.StringFlag{
		Name:        "t2",
		Usage:       "Second tuple, comma-separated components",
		Destination: &t2Arg,
		Required:    true,
	}
	dbFlag := &cli.StringFlag{
		Name:        "db",
		Usage:       "Path to the SQLite tuple database",
		Destination: &dbPath,
		Value:       "tuples.sqlite",
	}

	app := &cli.App{
		Name:                 "vectuple",
		Usage:                "Vector arithmetic over fixed-size tuples",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "dot",
				Usage: "Dot product of two tuples",
				Flags: []cli.Flag{t1Flag, t2Flag},
				Action: func(cCtx *cli.Context) error {
					t1, t2, err := parsePair(t1Arg, t2Arg)
					if err != nil {
						return err
					}
					v, err := tuple.Dot(t1, t2)
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				},
			},
			{
				Name:  "cross",
				Usage: "Cross product of two 3-dimensional tuples",
				Flags: []cli.Flag{t1Flag, t2Flag},
				Action: func(cCtx *cli.Context) error {
					t1, t2, err := parsePair(t1Arg, t2Arg)
					if err != nil {
						return err
					}
					v, err := tuple.Cross(t1, t2)
					if err != nil {
						return err
					}
					printTuple(v)
					return nil
				},
			},
			{
				Name:  "angle",
				Usage: "Angle between two tuples (radians by default)",
				Flags: []cli.Flag{t1Flag, t2Flag,
					&cli.BoolFlag{
						Name:        "degrees",
						Usage:       "Report the angle in degrees",
						Destination: &degrees,
					},
				},
				Action: func(cCtx *cli.Context) error {
					t1, t2, err := parsePair(t1Arg, t2Arg)
					if err != nil {
						return err
					}
					var v float64
					if degrees {
						v, err = tuple.AngleDegrees(t1, t2)
					} else {
						v, err = tuple.Angle(t1, t2)
					}
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				},
			},
			{
				Name:  "magnitude",
				Usage: "Euclidean norm of a tuple",
				Flags: []cli.Flag{t1Flag},
				Action: func(cCtx *cli.Context) error {
					t1, err := parseTuple(t1Arg)
					if err != nil {
						return err
					}
					v, err := tuple.Magnitude(t1)
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				},
			},
			{
				Name:  "normalize",
				Usage: "Unit vector of a tuple",
				Flags: []cli.Flag{t1Flag},
				Action: func(cCtx *cli.Context) error {
					t1, err := parseTuple(t1Arg)
					if err != nil {
						return err
					}
					v, err := tuple.Normalize(t1)
					if err != nil {
						return err
					}
					printTuple(v)
					return nil
				},
			},
			{
				Name:  "mean",
				Usage: "Arithmetic mean of a tuple's components",
				Flags: []cli.Flag{t1Flag,
					&cli.BoolFlag{
						Name:        "ignore-empty",
						Usage:       "Exclude zero and NaN components from the mean",
						Destination: &ignoreEmpty,
					},
				},
				Action: func(cCtx *cli.Context) error {
					t1, err := parseTuple(t1Arg)
					if err != nil {
						return err
					}
					v, err := tuple.Mean(t1, ignoreEmpty)
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				},
			},
			{
				Name:  "save",
				Usage: "Store a named tuple in the database",
				Flags: []cli.Flag{dbFlag, t1Flag,
					&cli.StringFlag{
						Name:        "name",
						Usage:       "Name to store the tuple under",
						Destination: &name,
						Required:    true,
					},
					&cli.StringFlag{
						Name:        "fields",
						Usage:       "Optional comma-separated field names (makes the tuple labeled)",
						Destination: &fieldsArg,
					},
				},
				Action: func(cCtx *cli.Context) error {
					t1, err := parseTuple(t1Arg)
					if err != nil {
						return err
					}
					var t tuple.Tuple = t1
					if fieldsArg != "" {
						values := make([]float64, t1.Len())
						for i := range values {
							values[i] = t1.At(i)
						}
						t, err = tuple.NewLabeled(splitFields(fieldsArg), values)
						if err != nil {
							return err
						}
					}
					s, db, err := openStore(dbPath)
					if err != nil {
						return err
					}
					defer db.Close()
					if err := s.Save(context.Background(), name, t); err != nil {
						return err
					}
					log.Infof("saved %s (%d components)", name, t.Len())
					return nil
				},
			},
			{
				Name:  "load",
				Usage: "Print a stored tuple",
				Flags: []cli.Flag{dbFlag,
					&cli.StringFlag{
						Name:        "name",
						Usage:       "Name of the stored tuple",
						Destination: &name,
						Required:    true,
					},
				},
				Action: func(cCtx *cli.Context) error {
					s, db, err := openStore(dbPath)
					if err != nil {
						return err
					}
					defer db.Close()
					t, err := s.Load(context.Background(), name)
					if err != nil {
						return err
					}
					printTuple(t)
					return nil
				},
			},
			{
				Name:  "names",
				Usage: "List stored tuple names",
				Flags: []cli.Flag{dbFlag},
				Action: func(cCtx *cli.Context) error {
					s, db, err := openStore(dbPath)
					if err != nil {
						return err
					}
					defer db.Close()
					names, err := s.Names(context.Background())
					if err != nil {
						return err
					}
					for _, n := range names {
						fmt.Println(n)
					}
					return nil
				},
			},
			{
				Name:  "search",
				Usage: "Rank stored tuples by angle to a query tuple",
				Flags: []cli.Flag{dbFlag, t1Flag,
					&cli.IntFlag{
						Name:        "k",
						Usage:       "Number of results (0 for all)",
						Destination: &k,
						Value:       5,
					},
				},
				Action: func(cCtx *cli.Context) error {
					q, err := parseTuple(t1Arg)
					if err != nil {
						return err
					}
					s, db, err := openStore(dbPath)
					if err != nil {
						return err
					}
					defer db.Close()
					records, err := s.All(context.Background())
					if err != nil {
						return err
					}
					names := make([]string, len(records))
					tuples := make([]tuple.Tuple, len(records))
					for i, r := range records {
						names[i] = r.Name
						tuples[i] = r.Tuple
					}
					var ix nearest.Index
					if err := ix.Build(names, tuples); err != nil {
						return err
					}
					got, angles, err := ix.Query(q, k)
					if err != nil {
						return err
					}
					for i := range got {
						fmt.Printf("%s\t%.6f\n", got[i], angles[i])
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openStore(dbPath string) (*store.Store, *sql.DB, error) {
	db, err := engine.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.New(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return s, db, nil
}

func parsePair(a, b string) (tuple.Tuple, tuple.Tuple, error) {
	t1, err := parseTuple(a)
	if err != nil {
		return nil, nil, err
	}
	t2, err := parseTuple(b)
	if err != nil {
		return nil, nil, err
	}
	return t1, t2, nil
}

func parseTuple(s string) (tuple.Plain, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = v
	}
	return tuple.Of(out...), nil
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printTuple(t tuple.Tuple) {
	if ls, ok := t.(tuple.LabeledShape); ok {
		names := ls.FieldNames()
		for i, n := range names {
			fmt.Printf("%s=%v ", n, t.At(i))
		}
		fmt.Println()
		return
	}
	for i := 0; i < t.Len(); i++ {
		fmt.Printf("%v ", t.At(i))
	}
	fmt.Println()
}
