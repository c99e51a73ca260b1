// Command edl-changelist compares cuts of a program and reports what
// changed between them.
//
// With two EDL locations it prints a tab-separated marker report:
//
//	edl-changelist --fps 24 old.edl new.edl [report.txt]
//
// With --serve it runs the changelist http service instead.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/NYTimes/gziphandler"
	"github.com/cbsinteractive/edl-changelist/changelist"
	"github.com/cbsinteractive/edl-changelist/config"
	"github.com/cbsinteractive/edl-changelist/edl"
	"github.com/cbsinteractive/edl-changelist/report"
	"github.com/cbsinteractive/edl-changelist/service"
	"github.com/cbsinteractive/edl-changelist/source"
	"github.com/cbsinteractive/edl-changelist/timecode"
	"github.com/google/gops/agent"
	"github.com/spf13/pflag"
)

var (
	serve = pflag.Bool("serve", false, "run the changelist http service")
	fps   = pflag.Int("fps", timecode.DefaultFPS, "frames per second used to read timecodes")
)

func main() {
	pflag.Parse()

	if *serve {
		runServer()
		return
	}
	runCompare(pflag.Args())
}

func runServer() {
	agent.Listen(agent.Options{})
	defer agent.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("unable to load the service configuration: ", err)
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := service.NewChangelistService(cfg, logger)
	if err != nil {
		logger.Fatal("unable to initialize service: ", err)
	}

	logger.Info("listening on ", cfg.HTTPAddr)
	err = http.ListenAndServe(cfg.HTTPAddr, gziphandler.GzipHandler(svc))
	if err != nil {
		logger.Fatal("server encountered a fatal error: ", err)
	}
}

func runCompare(args []string) {
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: edl-changelist [flags] old-cut new-cut [report-file]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()
	out := os.Stdout
	if len(args) == 3 && args[2] != "-" {
		f, err := os.Create(args[2])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	oldEvents, err := readCut(ctx, args[0], *fps)
	if err != nil {
		log.Fatalf("reading %s: %v", args[0], err)
	}
	newEvents, err := readCut(ctx, args[1], *fps)
	if err != nil {
		log.Fatalf("reading %s: %v", args[1], err)
	}

	changes := changelist.Compare(oldEvents, newEvents, *fps)
	if err := report.WriteChanges(out, changes, *fps); err != nil {
		log.Fatal(err)
	}
}

func readCut(ctx context.Context, location string, fps int) ([]edl.Event, error) {
	text, err := source.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return edl.Parse(string(text), fps)
}
