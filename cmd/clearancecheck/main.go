// Package main contains a command that checks the clearance between two
// shapes described in a JSON file.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/edaniels/golog"

	"github.com/routelab/boardmath/planarmath"
)

var logger = golog.NewDevelopmentLogger("clearancecheck")

type queryFile struct {
	Clearance int                       `json:"clearance"`
	Shapes    [2]planarmath.ShapeConfig `json:"shapes"`
}

func main() {
	clearance := flag.Int("clearance", -1, "override the clearance from the query file")
	withMTV := flag.Bool("mtv", false, "also compute a translation vector for the first shape")
	flag.Parse()

	if flag.NArg() < 1 {
		logger.Fatal("need a query file with two shapes")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal(err)
	}

	var query queryFile
	if err := json.Unmarshal(data, &query); err != nil {
		logger.Fatal(err)
	}
	if *clearance >= 0 {
		query.Clearance = *clearance
	}

	a, err := query.Shapes[0].ParseConfig()
	if err != nil {
		logger.Fatal(err)
	}
	b, err := query.Shapes[1].ParseConfig()
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infof("shape A: %s (bbox %s)", a, a.BBox())
	logger.Infof("shape B: %s (bbox %s)", b, b.BBox())

	var actual int
	var location planarmath.Vec
	var mtv planarmath.MTV

	mtvOut := &mtv
	if !*withMTV {
		mtvOut = nil
	}

	colliding, err := planarmath.CollideDetailed(a, b, query.Clearance, &actual, &location, mtvOut)
	if err != nil {
		logger.Fatal(err)
	}

	if !colliding {
		logger.Infof("no collision at clearance %d", query.Clearance)
		return
	}

	logger.Infof("collision at clearance %d: actual distance %d, location %s", query.Clearance, actual, location)
	if *withMTV {
		if mtv.Valid {
			logger.Infof("translation vector for shape A: %s", mtv.Vector)
		} else {
			logger.Info("no translation vector support for this shape pair")
		}
	}
}
