// Package scrollkit is a virtualized, variable-height list engine for
// [Ebitengine] programs, built on a small retained scene graph.
//
// A [TableView] lays out sections of rows, each with an optional header and
// footer, on a scroll layer. Heights come from a [Delegate] or are measured
// from the row's content, and the visible part is re-measured every frame so
// rows may change size after they first appear. Drags scroll the table
// elastically with momentum and spring-back, or clamped when configured with
// [ScrollClamped]. A short tap selects the row under it.
//
// scrollkit draws nothing. Walk [TableView.Node] with [Node.Children] and
// [Node.LocalToWorld] to paint sprites and labels however the host likes.
//
// # Quick start
//
//	tv := scrollkit.NewTableView(scrollkit.DefaultTableConfig(320, 480))
//	tv.LabelFont = font
//	tv.SetDelegate(myDelegate)
//	tv.SetDataSource(myDataSource)
//
//	scene := scrollkit.NewScene()
//	scene.AddTable(tv, 0, 0)
//	scrollkit.Run(scene, scrollkit.RunConfig{
//		Title: "Inbox", Width: 320, Height: 480,
//		OnDraw: func(screen *ebiten.Image) { drawTree(screen, scene.Root()) },
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] from it.
//
// # Frame order
//
// Each [Scene.UpdateWithDelta] refreshes world transforms, steps an attached
// [TestRunner], dispatches the primary pointer (mouse or first touch, or an
// injected event) to the topmost [TouchReceiver] under it, then runs every
// [Updater] in registration order. Tables advance their scroll animation,
// re-flow the visible rows and apply momentum in their Update.
//
// # Headless use
//
// Nothing outside [Run] and [Scene.Update] needs a window. Drive a scene
// with [Scene.UpdateWithDelta], feed it input with [Scene.InjectDrag] and
// friends or a JSON script from [LoadTestScript], and measure labels with
// [MonospaceFont].
//
// # Motion agent
//
// The agent subpackage animates named 2D goals with damped velocity, edge
// adsorption and scripted moves; agent.Dragger lets the pointer throw them.
// The ecs subpackage publishes row selection, touches and goal moves into a
// Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package scrollkit
