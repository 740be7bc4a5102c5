// Command element-lens reads a chemical element symbol from a photo and asks
// Gemini to describe the element.
//
// Run without arguments it opens the webcam, waits for 'q' and analyzes the
// captured frame. Subcommands analyze an existing file, serve the HTTP upload
// page, run the Telegram bot, or list the known elements.
package main
