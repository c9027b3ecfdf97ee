// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/gapguard/cache"
	"github.com/l3montree-dev/gapguard/controllers"
	"github.com/l3montree-dev/gapguard/database"
	"github.com/l3montree-dev/gapguard/database/repositories"
	"github.com/l3montree-dev/gapguard/evidence"
	"github.com/l3montree-dev/gapguard/matching"
	"github.com/l3montree-dev/gapguard/monitoring"
	"github.com/l3montree-dev/gapguard/router"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/l3montree-dev/gapguard/strategy"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				monitoring.RecoverAndAlert("unhandled panic", fmt.Errorf("%v", err))
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	}

	fx.New(
		fx.Supply(db),
		cache.Module,
		repositories.Module,
		matching.Module,
		strategy.Module,
		evidence.Module,
		controllers.Module,
		router.Module,

		// we need to invoke the router to register its routes
		fx.Invoke(func(router.APIV1Router) {}),
		fx.Invoke(router.Start),
	).Run()
}

func initSentry() {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:           os.Getenv("ERROR_TRACKING_DSN"),
		EnableTracing: false,
	}); err != nil {
		slog.Error("could not initialize error tracking", "err", err)
	}
}
