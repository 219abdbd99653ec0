// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package supervisor provides process supervision for What2Eat using suture v4.

Every long-running component of the server runs as a suture.Service inside a
two-layer tree:

	RootSupervisor ("what2eat")
	├── DataSupervisor ("data-layer")
	│   ├── SessionJanitorService
	│   ├── BadgerGCService (SESSION_STORE=badger)
	│   └── weather cache sweeper
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing maintenance loop is restarted inside the data layer and never
interrupts request handling.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewSessionJanitorService(store, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 15*time.Second, logger))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Failure Handling

TreeConfig mirrors suture.Spec. Each failure increments a counter that decays
over FailureDecay seconds; above FailureThreshold the supervisor waits
FailureBackoff before the next restart. Zero fields take the defaults from
DefaultTreeConfig.

Services return nil to stop for good, an error to be restarted, and ctx.Err()
on shutdown. If a service ignores cancellation past ShutdownTimeout it shows up
in UnstoppedServiceReport.

Supervisor events are logged through sutureslog.
*/
package supervisor
