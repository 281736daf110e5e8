package game

import "image/color"

// palette is one colour theme of the page.
type palette struct {
	name        string
	bgTop       color.NRGBA
	bgBottom    color.NRGBA
	header      color.NRGBA
	panel       color.NRGBA
	panelBorder color.NRGBA
	text        color.NRGBA
	button      color.NRGBA
	buttonText  color.NRGBA
	accent      color.NRGBA
}

var palettes = []palette{
	{
		name:        "dark",
		bgTop:       color.NRGBA{R: 10, G: 8, B: 24, A: 255},
		bgBottom:    color.NRGBA{R: 28, G: 10, B: 48, A: 255},
		header:      color.NRGBA{R: 255, G: 255, B: 255, A: 12},
		panel:       color.NRGBA{R: 255, G: 255, B: 255, A: 20},
		panelBorder: color.NRGBA{R: 255, G: 255, B: 255, A: 40},
		text:        color.NRGBA{R: 240, G: 236, B: 255, A: 255},
		button:      color.NRGBA{R: 36, G: 14, B: 60, A: 255},
		buttonText:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		accent:      color.NRGBA{R: 242, G: 5, B: 226, A: 255},
	},
	{
		name:        "light",
		bgTop:       color.NRGBA{R: 246, G: 244, B: 252, A: 255},
		bgBottom:    color.NRGBA{R: 226, G: 220, B: 244, A: 255},
		header:      color.NRGBA{R: 0, G: 0, B: 0, A: 10},
		panel:       color.NRGBA{R: 255, G: 255, B: 255, A: 200},
		panelBorder: color.NRGBA{R: 0, G: 0, B: 0, A: 30},
		text:        color.NRGBA{R: 24, G: 18, B: 40, A: 255},
		button:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		buttonText:  color.NRGBA{R: 60, G: 10, B: 80, A: 255},
		accent:      color.NRGBA{R: 180, G: 0, B: 170, A: 255},
	},
}
