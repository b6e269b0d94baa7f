// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	fs := afero.NewOsFs()
//
//	// Pick a name that does not overwrite a previous run
//	path, err := ioutils.UniqueFileName(fs, dir, "hex_codes_list", ".txt")
//
//	// Write one entry per line, or a JSON document
//	err = ioutils.WriteLines(fs, path, hexCodes)
//	err = ioutils.WriteJSON(fs, linksPath, hrefs)
//
// # Image Processing
//
// The ImageService samples artwork colors and post-processes downloads:
//
//	svc := ioutils.NewImageService()
//
//	// Mean color of the whole image
//	rgb, _ := svc.AverageColor(imageData)
//
//	// Resize image to fit within 1000x1000 and re-encode as JPEG
//	resized, _ := svc.ResizeImage(imageData, 1000, 1000)
package ioutils
