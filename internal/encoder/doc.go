// Package encoder turns PlantUML source text into the path segment a PlantUML
// server decodes, and back.
//
// Two encodings exist. The deflate encoding compresses the normalized text
// into a raw deflate stream and repacks it 6 bits at a time into the alphabet
// 0-9A-Za-z-_ (see https://plantuml.com/text-encoding). The hex encoding
// writes "~h" followed by the text's bytes in lowercase hex. Select chooses
// between them for a Mode.
//
// Every function is a pure transform over in-memory values; nothing here
// blocks, allocates shared state, or fails on encode paths.
package encoder
