/*
Package mcfg implements an agenda-based deductive parser for Multiple
Context-Free Grammars (MCFG), in the style of Shieber, Schabes & Pereira
(1995).

A grammar is a set of linear, non-deleting rules over nonterminals that
yield tuples of string spans rather than single spans, as in ordinary
context-free grammars. Given a grammar and a sequence of input tokens, a
parser either recognizes the sequence (a boolean answer) or reconstructs
every derivation tree rooted at a start nonterminal spanning the whole
input.

Package mcfg is the core engine only: the data model (Rule, Grammar,
Item, Tree) and the agenda/chart deduction loop. Textual grammar syntax
is read by the sibling package ruletext; pretty-printing and CLI wrapping
live outside this package entirely.
*/
package mcfg
