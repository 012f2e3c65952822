package main

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yoinktube/internal/config"
	"github.com/ytget/yoinktube/internal/download"
	"github.com/ytget/yoinktube/internal/history"
	"github.com/ytget/yoinktube/internal/logging"
	"github.com/ytget/yoinktube/internal/platform"
	"github.com/ytget/yoinktube/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.yoinktube"

	installTimeout = 5 * time.Minute
)

func main() {
	rt := config.LoadRuntime()
	log := logging.New(rt.LogLevel)
	log.Info().Str("version", version).Msg("YoinkTube starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(ui.WindowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp.Preferences())

	executable := rt.YTDLPPath
	if executable == "" && rt.AutoInstall {
		ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
		path, err := download.InstallYTDLP(ctx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("yt-dlp install failed, falling back to PATH")
		} else {
			executable = path
		}
	}
	runner := download.NewYTDLPRunner(executable, log)

	svcs := ui.Services{
		Settings: settings,
		Prober:   platform.NewPlaylistProbe(),
		Log:      log,
	}

	var recorder download.HistoryRecorder
	store, err := history.Open(rt.HistoryDB)
	if err != nil {
		log.Warn().Err(err).Str("path", rt.HistoryDB).Msg("download history disabled")
	} else {
		defer store.Close()
		recorder = store
		svcs.History = store
	}

	svcs.Downloader = download.NewService(runner, settings, recorder, log)

	ui.NewRootUI(myWindow, svcs)

	myWindow.ShowAndRun()
}
