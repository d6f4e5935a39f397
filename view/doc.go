// Package view hosts a spheregrid.Engine inside an [Ebitengine] window. It
// polls mouse and touch input, ticks the engine once per ebiten update, and
// paints each Frame as round thumbnails in stacking order.
//
//	engine := spheregrid.NewEngine(spheregrid.DefaultConfig(), items)
//	images := view.NewImageCache("assets", 128)
//	err := view.Run(engine, images, view.RunConfig{
//		Title: "Gallery", Width: 480, Height: 560,
//	})
//
// [Ebitengine]: https://ebitengine.org
package view
