// Package render turns automata into things people look at: a colorized text listing, Graphviz
// DOT, Mermaid state diagrams, and a Markdown summary which can be rendered for a terminal.
package render
