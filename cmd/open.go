// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/cliout"
	"github.com/pathwayhq/pathway/fsys"
	"github.com/pathwayhq/pathway/launch"
	"github.com/pathwayhq/pathway/procutil"
	"github.com/pathwayhq/pathway/profile"
	"github.com/pathwayhq/pathway/urlutil"
)

type openOptions struct {
	browser     string
	channel     string
	profile     string
	profileDir  string
	tempProfile bool
	guest       bool
	incognito   bool
	newWindow   bool
	kiosk       bool
	dryRun      bool
}

// engine bundles the core components over one filesystem so every command
// builds them the same way.
type engine struct {
	fs       fsys.FileSystem
	registry *browser.Registry
	store    *profile.Store
	planner  *launch.Planner
}

func newEngine() *engine {
	fs := fsys.OS{}
	probe := browser.NewProbe()
	store := profile.NewStore(fs, probe)
	return &engine{
		fs:       fs,
		registry: browser.NewRegistry(fs, probe),
		store:    store,
		planner:  launch.NewPlanner(store),
	}
}

// resolveTarget maps the --browser/--channel flags to a detected browser.
// Without --browser it tries the system default handler; nil with no error
// means not even that could be resolved and the plan should defer to the OS.
func (e *engine) resolveTarget(name, channel string) (*browser.Info, error) {
	if name == "" {
		if info, ok := e.registry.SystemDefault(); ok {
			return &info, nil
		}
		return nil, nil
	}

	ch, ok := browser.ParseChannel(strings.ToLower(channel))
	if !ok {
		return nil, fmt.Errorf("unknown channel %q (valid: stable, beta, dev, canary)", channel)
	}
	info, err := e.registry.Resolve(name, ch)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// buildRequest translates CLI flags into a planner request.
func buildRequest(target *browser.Info, opts openOptions, urls []string) launch.Request {
	return launch.Request{
		Browser: target,
		Profile: launch.ProfileRequest{
			Named:     opts.profile,
			CustomDir: opts.profileDir,
			Temporary: opts.tempProfile,
			Guest:     opts.guest,
		},
		Window: launch.WindowOptions{
			NewWindow: opts.newWindow,
			Incognito: opts.incognito,
			Kiosk:     opts.kiosk,
		},
		URLs: urls,
	}
}

// openResult is the JSON shape of an open invocation: the validated URLs,
// the plan that was compiled, and the per-URL spawn outcomes (absent on
// --dry-run).
type openResult struct {
	URLs     []urlutil.Validated `json:"urls"`
	Plan     launch.Plan         `json:"plan"`
	Outcomes []launch.Outcome    `json:"outcomes,omitempty"`
	DryRun   bool                `json:"dry_run,omitempty"`
}

func runOpen(opts openOptions, rawURLs []string) error {
	eng := newEngine()

	validated := make([]urlutil.Validated, 0, len(rawURLs))
	urls := make([]string, 0, len(rawURLs))
	for _, raw := range rawURLs {
		v, err := urlutil.Validate(raw, eng.fs)
		if err != nil {
			return err
		}
		validated = append(validated, v)
		urls = append(urls, v.Normalized)
	}

	target, err := eng.resolveTarget(opts.browser, opts.channel)
	if err != nil {
		return err
	}

	plan, err := eng.planner.Plan(buildRequest(target, opts, urls))
	if err != nil {
		return err
	}

	if !cliout.IsJSON() {
		for _, v := range validated {
			if v.Warning != "" {
				cliout.Warning("%s", v.Warning)
			}
		}
		for _, w := range plan.Warnings {
			cliout.Warning("%s", w)
		}
	}

	if target != nil && procutil.IsRunning(target.Executable) {
		slog.Debug("browser already running; URLs will open in the existing instance",
			"browser", target.Token)
	}

	result := openResult{URLs: validated, Plan: plan, DryRun: opts.dryRun}

	if opts.dryRun {
		return cliout.Print(result, func() { printPlan(plan) })
	}

	result.Outcomes = launch.NewLauncher().Launch(plan)

	failed := 0
	for _, o := range result.Outcomes {
		if !o.OK {
			failed++
		}
	}

	if err := cliout.Print(result, func() { printOutcomes(result.Outcomes) }); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d launches failed", failed, len(result.Outcomes))
	}
	return nil
}

func printPlan(plan launch.Plan) {
	if plan.UsesSystemDefault {
		cliout.Plain("Would open with the system default browser:")
	} else {
		command := plan.Executable
		if len(plan.Args) > 0 {
			command += " " + strings.Join(plan.Args, " ")
		}
		cliout.Plain("Would run: %s <url>", command)
	}
	for _, u := range plan.URLs {
		cliout.Bullet("%s", u)
	}
}

func printOutcomes(outcomes []launch.Outcome) {
	for _, o := range outcomes {
		if o.OK {
			cliout.Success("%s", o.URL)
		} else {
			cliout.Error("%s: %s", o.URL, o.Err)
		}
	}
}
