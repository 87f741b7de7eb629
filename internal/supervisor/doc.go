// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package supervisor provides process supervision for Curriculum using suture v4.

The tree separates background content work from request serving:

	RootSupervisor ("curriculum")
	├── ContentSupervisor ("content-layer")
	│   └── IndexRefreshService (search index or cache warm-up)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing index rebuild restarts inside the content layer and never takes the
HTTP server down with it.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddContentService(services.NewIndexRefreshService(index, services.IndexRefreshConfig{Interval: time.Hour}))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

Supervisor events (restarts, backoff, timeouts) are logged through sutureslog,
which writes to the slog logger backed by zerolog.
*/
package supervisor
