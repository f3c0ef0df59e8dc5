// Package render draws a planar.State with the gg 2D graphics library.
//
// It is the reference renderer for the editor: it reads anchors, edges and
// the drag state, and never mutates the State.
//
// # Coordinate System
//
// planar uses editor units with the origin at the canvas centre and Y
// pointing up. gg uses pixels with the origin at the top-left and Y
// pointing down. Draw maps one unit to one pixel:
//
//	px = width/2 + x
//	py = height/2 - y
//
// # Usage
//
//	img, err := render.Snapshot(state, 1024, 1024, nil, render.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	render.DrawHUD(img, render.DefaultStyle().HUD, render.Summary(state))
//	thumb := render.Thumbnail(img, 256)
package render
