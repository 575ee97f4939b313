package ui

import (
	"context"
	"errors"
	"image/color"
	"path/filepath"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/quranpak-player/internal/catalog"
	"github.com/ytget/quranpak-player/internal/config"
	"github.com/ytget/quranpak-player/internal/logger"
	"github.com/ytget/quranpak-player/internal/model"
	"github.com/ytget/quranpak-player/internal/state"
	"github.com/ytget/quranpak-player/internal/ticker"
)

// Controller is the part of the player controller the window drives.
type Controller interface {
	State() state.State
	Catalog() *catalog.Catalog
	Subscribe(fn func(state.State))
	Position() time.Duration

	Play()
	Stop()
	Next()
	Download()
	Select(index int)
	SelectReciter(name string)
	SetAya(text string)
	SetAutoPlay(enabled bool)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	ctrl         Controller
	localization *Localization

	catalogPath string
	interval    time.Duration
	cycler      *ticker.ColorCycler

	reciterSelect *widget.Select
	chapterSelect *widget.Select
	chapterLabel  *widget.Label
	ayaEntry      *widget.Entry
	playBtn       *widget.Button
	stopBtn       *widget.Button
	nextBtn       *widget.Button
	downloadBtn   *widget.Button
	autoPlayCheck *widget.Check
	statusLabel   *widget.Label
	credit        *canvas.Text

	// syncing is set while a snapshot is pushed into the widgets so their
	// change callbacks do not echo it back to the controller.
	syncing bool
}

// NewRootUI creates the window content and subscribes to controller updates
func NewRootUI(window fyne.Window, ctrl Controller, cfg *config.Config) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(cfg.Language)

	ui := &RootUI{
		window:       window,
		ctrl:         ctrl,
		localization: localization,
		catalogPath:  cfg.CatalogPath,
		interval:     cfg.ParsedTickerInterval,
		cycler:       ticker.NewColorCycler(cfg.ParsedPalette),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.render(ctrl.State())

	ctrl.Subscribe(func(s state.State) {
		fyne.Do(func() { ui.render(s) })
	})

	return ui
}

// StartTicker cycles the credit colour and refreshes the elapsed time until ctx is done
func (ui *RootUI) StartTicker(ctx context.Context) {
	go ui.cycler.Run(ctx, ui.interval, func(c color.Color) {
		fyne.Do(func() { ui.tick(c) })
	})
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.reciterSelect = widget.NewSelect(model.DefaultReciters(), func(name string) {
		if ui.syncing {
			return
		}
		ui.ctrl.SelectReciter(name)
	})

	ui.chapterSelect = widget.NewSelect(nil, func(string) {
		if ui.syncing {
			return
		}
		ui.ctrl.Select(ui.chapterSelect.SelectedIndex())
	})

	ui.ayaEntry = widget.NewEntry()
	ui.ayaEntry.SetPlaceHolder(l.GetText(KeyAyaPlaceholder))
	ui.ayaEntry.OnChanged = func(text string) {
		if ui.syncing {
			return
		}
		ui.ctrl.SetAya(text)
	}

	ui.playBtn = widget.NewButton(l.GetText(KeyPlay), ui.ctrl.Play)
	ui.playBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(l.GetText(KeyStop), ui.ctrl.Stop)
	ui.nextBtn = widget.NewButton(l.GetText(KeyNext), ui.ctrl.Next)
	ui.downloadBtn = widget.NewButton(l.GetText(KeyDownload), ui.ctrl.Download)

	ui.autoPlayCheck = widget.NewCheck(l.GetText(KeyAutoPlay), func(enabled bool) {
		if ui.syncing {
			return
		}
		ui.ctrl.SetAutoPlay(enabled)
	})

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.credit = canvas.NewText(l.GetText(KeyCredit), ui.cycler.Next())
	ui.credit.Alignment = fyne.TextAlignCenter
	ui.credit.TextSize = CreditTextSize
	ui.credit.TextStyle = fyne.TextStyle{Bold: true}

	heading := func(key string) *widget.Label {
		label := widget.NewLabel(l.GetText(key))
		label.TextStyle = fyne.TextStyle{Bold: true}
		if l.IsRightToLeft() {
			label.Alignment = fyne.TextAlignTrailing
		}
		return label
	}

	ui.chapterLabel = heading(KeyChapter)
	ui.chapterLabel.Wrapping = fyne.TextWrapWord

	buttons := container.NewGridWithColumns(4, ui.playBtn, ui.stopBtn, ui.nextBtn, ui.downloadBtn)

	content := container.NewVBox(
		heading(KeyReciter),
		ui.reciterSelect,
		ui.chapterLabel,
		ui.chapterSelect,
		heading(KeyAya),
		ui.ayaEntry,
		buttons,
		ui.autoPlayCheck,
		widget.NewSeparator(),
		ui.statusLabel,
		layoutSpacer(),
		ui.credit,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// render pushes a snapshot into the widgets. It must run on the UI thread.
func (ui *RootUI) render(s state.State) {
	ui.syncing = true
	defer func() { ui.syncing = false }()

	labels := ui.ctrl.Catalog().Labels()
	if !slices.Equal(ui.chapterSelect.Options, labels) {
		ui.chapterSelect.SetOptions(labels)
	}

	if ui.chapterSelect.SelectedIndex() != s.Selected {
		if s.HasSelection() {
			ui.chapterSelect.SetSelectedIndex(s.Selected)
		} else {
			ui.chapterSelect.ClearSelected()
		}
	}

	if ui.reciterSelect.Selected != s.Reciter {
		ui.reciterSelect.SetSelected(s.Reciter)
	}

	if ui.ayaEntry.Text != s.Aya {
		ui.ayaEntry.SetText(s.Aya)
	}

	if ui.autoPlayCheck.Checked != s.AutoPlay {
		ui.autoPlayCheck.SetChecked(s.AutoPlay)
	}

	ui.renderChapterLabel(s.CatalogErr)

	setEnabled(ui.playBtn, s.HasSelection())
	setEnabled(ui.downloadBtn, s.HasSelection())
	setEnabled(ui.nextBtn, !s.AtLast())
	setEnabled(ui.stopBtn, true)

	ui.statusLabel.SetText(ui.statusText(s))
}

// tick advances the credit colour and the elapsed time.
func (ui *RootUI) tick(c color.Color) {
	ui.credit.Color = c
	ui.credit.Refresh()

	s := ui.ctrl.State()
	if s.Status == model.PlaybackPlaying {
		ui.statusLabel.SetText(ui.statusText(s))
	}
}

func (ui *RootUI) statusText(s state.State) string {
	l := ui.localization

	switch s.Status {
	case model.PlaybackLoading:
		return l.GetText(KeyStatusLoading) + MiddleDotSeparator + ui.playingLabel(s)
	case model.PlaybackPlaying:
		text := l.GetText(KeyStatusPlaying) + MiddleDotSeparator + ui.playingLabel(s) +
			MiddleDotSeparator + model.FormatClock(ui.ctrl.Position())
		if s.Size > 0 {
			text += MiddleDotSeparator + humanize.Bytes(uint64(s.Size))
		}
		return text
	case model.PlaybackError:
		return l.Format(KeyStatusError, s.Err)
	}

	if s.Err != nil {
		return l.Format(KeyDownloadFailed, s.Err)
	}

	return l.GetText(KeyStatusIdle)
}

func (ui *RootUI) playingLabel(s state.State) string {
	ch, ok := ui.ctrl.Catalog().At(s.Playing)
	if !ok {
		return DashPlaceholder
	}
	return ch.Label()
}

// renderChapterLabel swaps the chapter heading for the catalog error while one is set.
func (ui *RootUI) renderChapterLabel(err error) {
	text, importance := ui.localization.GetText(KeyChapter), widget.MediumImportance
	if err != nil {
		text, importance = ui.catalogMessage(err), widget.DangerImportance
	}

	if ui.chapterLabel.Text == text && ui.chapterLabel.Importance == importance {
		return
	}

	ui.chapterLabel.Importance = importance
	ui.chapterLabel.SetText(text)
}

func (ui *RootUI) catalogMessage(err error) string {
	name := filepath.Base(ui.catalogPath)

	if errors.Is(err, catalog.ErrNotFound) {
		return ui.localization.Format(KeyCatalogNotFound, name)
	}

	logger.Debugf(context.Background(), "catalog error shown inline: %v", err)

	return ui.localization.Format(KeyCatalogInvalid, name, err)
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

func layoutSpacer() fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, theme.Padding()*4))
	return spacer
}
