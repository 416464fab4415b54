package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/nrem/corridash/config"
)

// MenuOptions are the toggles the menu edits in place. The runner scene reads
// them when it spawns the settings entity.
type MenuOptions struct {
	ScreenShake bool
	Fog         bool
}

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI      *ebitenui.UI
	Options *MenuOptions

	// Callbacks
	OnPlay func()
	OnQuit func()

	// Widget references for updates
	shakeButton *widget.Button
	fogButton   *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI creates the main menu UI with ebitenui
func NewMenuUI(options *MenuOptions, onPlay, onQuit func()) *MenuUI {
	mui := &MenuUI{
		Options: options,
		OnPlay:  onPlay,
		OnQuit:  onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("PLAY", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 180, 255},
			Pressed: color.RGBA{200, 180, 140, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay()
			}
		}),
	)
	contentContainer.AddChild(playButton)

	mui.shakeButton = mui.toggleButton(shakeLabel(mui.Options.ScreenShake), func() {
		mui.Options.ScreenShake = !mui.Options.ScreenShake
		mui.UpdateUI()
	})
	contentContainer.AddChild(mui.shakeButton)

	mui.fogButton = mui.toggleButton(fogLabel(mui.Options.Fog), func() {
		mui.Options.Fog = !mui.Options.Fog
		mui.UpdateUI()
	})
	contentContainer.AddChild(mui.fogButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("QUIT", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (mui *MenuUI) toggleButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 24)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 230, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{180, 180, 190, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// UpdateUI refreshes the toggle labels from the current option values
func (mui *MenuUI) UpdateUI() {
	if mui.shakeButton != nil {
		if textWidget := mui.shakeButton.Text(); textWidget != nil {
			textWidget.Label = shakeLabel(mui.Options.ScreenShake)
		}
	}
	if mui.fogButton != nil {
		if textWidget := mui.fogButton.Text(); textWidget != nil {
			textWidget.Label = fogLabel(mui.Options.Fog)
		}
	}
}

func shakeLabel(v bool) string {
	return fmt.Sprintf("Screen Shake: %s", onOff(v))
}

func fogLabel(v bool) string {
	return fmt.Sprintf("Distance Fog: %s", onOff(v))
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{50, 54, 78, 255})
	hover := image.NewNineSliceColor(color.RGBA{70, 74, 98, 255})
	pressed := image.NewNineSliceColor(color.RGBA{36, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
