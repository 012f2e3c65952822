package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/yoinktube/internal/config"
	"github.com/ytget/yoinktube/internal/download"
	"github.com/ytget/yoinktube/internal/model"
	"github.com/ytget/yoinktube/internal/platform"
)

// HistoryLister returns recent downloads for the history dialog
type HistoryLister interface {
	Recent(ctx context.Context, limit int) ([]*model.DownloadTask, error)
}

// PlaylistProber counts playlist entries before a download
type PlaylistProber interface {
	Probe(ctx context.Context, rawURL string) (*model.Playlist, error)
}

// Services bundles what the window talks to. History and Prober are optional.
type Services struct {
	Downloader download.Downloader
	Settings   *config.Settings
	History    HistoryLister
	Prober     PlaylistProber
	Log        zerolog.Logger
}

// RootUI represents the main window
type RootUI struct {
	window   fyne.Window
	svc      Services
	log      zerolog.Logger
	runAsync func(func())

	urlEntry       *widget.Entry
	outputDirEntry *widget.Entry
	chooseDirBtn   *widget.Button
	openDirBtn     *widget.Button
	audioOnlyCheck *widget.Check
	bitrateSelect  *widget.Select
	formatSelect   *widget.Select
	qualitySelect  *widget.Select
	downloadBtn    *widget.Button
	historyBtn     *widget.Button
	statusLabel    *widget.Label
}

// NewRootUI builds the window content and applies the stored preferences
func NewRootUI(window fyne.Window, svc Services) *RootUI {
	ui := &RootUI{
		window:   window,
		svc:      svc,
		log:      svc.Log.With().Str("component", "ui").Logger(),
		runAsync: func(fn func()) { go fn() },
	}

	window.SetTitle(WindowTitle)
	ui.setupUI()

	if svc.Settings != nil {
		ui.applyPreferences(svc.Settings.Load())
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(PlaceholderURL)
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.outputDirEntry = widget.NewEntry()
	ui.outputDirEntry.Disable()

	ui.chooseDirBtn = widget.NewButton(LabelChooseDir, ui.onChooseDirectory)
	ui.openDirBtn = widget.NewButton(IconFolder+" "+LabelOpenDir, ui.onOpenDirectory)

	ui.audioOnlyCheck = widget.NewCheck(LabelAudioOnly, nil)

	ui.bitrateSelect = widget.NewSelect(bitrateOptions(), nil)
	ui.formatSelect = widget.NewSelect(containerOptions(), nil)
	ui.qualitySelect = widget.NewSelect(qualityOptions(), nil)

	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.historyBtn = widget.NewButton(IconHistory+" "+LabelHistory, ui.onShowHistory)
	ui.historyBtn.Importance = widget.LowImportance
	if ui.svc.History == nil {
		ui.historyBtn.Hide()
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Hide()

	form := container.NewVBox(
		widget.NewLabel(LabelURL),
		ui.urlEntry,
		widget.NewLabel(LabelOutputDir),
		container.NewBorder(nil, nil, nil, ui.openDirBtn, ui.outputDirEntry),
		ui.chooseDirBtn,
		ui.audioOnlyCheck,
		widget.NewLabel(LabelAudioBitrate),
		ui.bitrateSelect,
		widget.NewLabel(LabelFormat),
		ui.formatSelect,
		widget.NewLabel(LabelQuality),
		ui.qualitySelect,
		ui.downloadBtn,
		ui.statusLabel,
	)

	content := container.NewBorder(
		nil,
		container.NewHBox(ui.historyBtn),
		nil,
		nil,
		container.NewVScroll(form),
	)

	ui.window.SetContent(content)
}

// applyPreferences pushes a preferences record into the widgets. Values that
// are not among the options leave the corresponding select unchanged.
func (ui *RootUI) applyPreferences(prefs model.Preferences) {
	ui.outputDirEntry.SetText(prefs.OutputDir)
	ui.formatSelect.SetSelected(string(prefs.Format))
	ui.qualitySelect.SetSelected(string(prefs.Quality))
	ui.bitrateSelect.SetSelected(string(prefs.AudioBitrate))
	ui.audioOnlyCheck.SetChecked(prefs.AudioOnly)
}

// currentRequest reads the selection from the widgets
func (ui *RootUI) currentRequest() model.DownloadRequest {
	return model.DownloadRequest{
		URL:          cleanURL(ui.urlEntry.Text),
		OutputDir:    ui.outputDirEntry.Text,
		AudioOnly:    ui.audioOnlyCheck.Checked,
		Container:    model.Container(ui.formatSelect.Selected),
		Quality:      model.VideoQuality(ui.qualitySelect.Selected),
		AudioBitrate: model.AudioBitrate(ui.bitrateSelect.Selected),
	}
}

// onChooseDirectory shows the folder picker, starting at the current directory if it exists
func (ui *RootUI) onChooseDirectory() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setOutputDirectory(uri.Path())
	}, ui.window)

	start := ui.outputDirEntry.Text
	if !platform.DirectoryExists(start) {
		start, _ = platform.GetHomeDownloadsDir()
	}
	if platform.DirectoryExists(start) {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			picker.SetLocation(lister)
		}
	}

	picker.Show()
}

// setOutputDirectory accepts only existing directories
func (ui *RootUI) setOutputDirectory(dir string) {
	if err := platform.CheckDirectory(dir); err != nil {
		ui.log.Warn().Err(err).Str("dir", dir).Msg("rejected output directory")
		dialog.ShowInformation(TitleWarning, fmt.Sprintf(MsgSelectDirErr, err), ui.window)
		return
	}
	ui.outputDirEntry.SetText(dir)
}

// onOpenDirectory reveals the output directory in the file manager
func (ui *RootUI) onOpenDirectory() {
	if err := platform.OpenDirectory(ui.outputDirEntry.Text); err != nil {
		ui.log.Warn().Err(err).Msg("failed to open output directory")
		dialog.ShowError(err, ui.window)
	}
}

// onDownloadClick validates the selection and starts the download
func (ui *RootUI) onDownloadClick() {
	if ui.svc.Downloader.InProgress() {
		return
	}

	req := ui.currentRequest()
	if _, err := download.Build(req); err != nil {
		dialog.ShowInformation(TitleWarning, download.ErrorMessage(err), ui.window)
		return
	}

	if ui.svc.Prober != nil && platform.IsPlaylistURL(req.URL) {
		ui.confirmPlaylist(req)
		return
	}

	ui.startDownload(req)
}

// confirmPlaylist probes the playlist and asks before downloading every entry.
// If probing fails the URL is downloaded as given.
func (ui *RootUI) confirmPlaylist(req model.DownloadRequest) {
	ui.setBusy(true)
	ui.runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), PlaylistProbeTimeout)
		defer cancel()

		playlist, err := ui.svc.Prober.Probe(ctx, req.URL)
		fyne.Do(func() {
			ui.setBusy(false)
			if err != nil || playlist.IsEmpty() {
				if err != nil {
					ui.log.Warn().Err(err).Str("url", req.URL).Msg("playlist probe failed")
				}
				ui.startDownload(req)
				return
			}
			message := fmt.Sprintf(MsgPlaylistFmt, playlist.Len())
			dialog.ShowConfirm(TitlePlaylist, message, func(ok bool) {
				if ok {
					ui.startDownload(req)
				}
			}, ui.window)
		})
	})
}

// startDownload runs the blocking download off the event loop and reports the outcome
func (ui *RootUI) startDownload(req model.DownloadRequest) {
	ui.setBusy(true)
	ui.runAsync(func() {
		task, err := ui.svc.Downloader.Download(context.Background(), req)
		fyne.Do(func() {
			ui.setBusy(false)
			if err != nil {
				dialog.ShowError(errors.New(download.ErrorMessage(err)), ui.window)
				return
			}
			ui.log.Info().Str("task", task.ID).Msg("download reported to user")
			dialog.ShowInformation(TitleSuccess, MsgCompleted, ui.window)
		})
	})
}

// setBusy disables the download button while a download is in flight
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.downloadBtn.Disable()
		ui.statusLabel.SetText(LabelDownloading)
		ui.statusLabel.Show()
		return
	}
	ui.downloadBtn.Enable()
	ui.statusLabel.Hide()
}

// onShowHistory lists recent downloads
func (ui *RootUI) onShowHistory() {
	if ui.svc.History == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), HistoryQueryTimeout)
	defer cancel()

	tasks, err := ui.svc.History.Recent(ctx, HistoryLimit)
	if err != nil {
		ui.log.Warn().Err(err).Msg("failed to load history")
		dialog.ShowError(err, ui.window)
		return
	}

	var content fyne.CanvasObject
	if len(tasks) == 0 {
		content = widget.NewLabel(MsgNoHistory)
	} else {
		list := widget.NewList(
			func() int { return len(tasks) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				obj.(*widget.Label).SetText(historyLine(tasks[id]))
			},
		)
		content = list
	}

	d := dialog.NewCustom(TitleHistory, "Close", content, ui.window)
	d.Resize(fyne.NewSize(HistoryDialogWidth, HistoryDialogHeight))
	d.Show()
}

// historyLine formats a history entry for display
func historyLine(task *model.DownloadTask) string {
	kind := "video"
	if task.AudioOnly {
		kind = "audio"
	}
	return strings.Join([]string{
		task.FinishedAt.Format("2006-01-02 15:04"),
		task.GetDisplayTitle(),
		kind,
		task.GetElapsedString(),
	}, MiddleDotSeparator)
}

// validateURL gives inline feedback; it does not block downloads
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// cleanURL strips whitespace that pasting tends to bring along
func cleanURL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}

func containerOptions() []string {
	var out []string
	for _, c := range model.Containers() {
		out = append(out, string(c))
	}
	return out
}

func qualityOptions() []string {
	var out []string
	for _, q := range model.VideoQualities() {
		out = append(out, string(q))
	}
	return out
}

func bitrateOptions() []string {
	var out []string
	for _, b := range model.AudioBitrates() {
		out = append(out, string(b))
	}
	return out
}
