// Package telegram is a long-polling Telegram bot front end for the element
// pipeline.
//
// Send the bot a photo (or an image document) of a chemical symbol and it
// replies with the element name and the model's description. /start and /help
// print usage.
package telegram
