/* Package main: treeforth, a small FORTH-like stack language

Each input line is parsed into a syntax tree and executed against a single
operand stack of 64-bit integers and a dictionary of user defined words, both
of which last for the whole session. Typing quit on a line of its own ends
the session.

	10 3 - .                  \ prints 7
	: sq dup * ;              \ defines sq
	7 sq .                    \ prints 49
	-1 if ." yes" else ." no" then
	5 0 do i . loop           \ prints 0 through 4

Words are resolved when they run, not when they are defined, so a word may
call another that is only defined later, and redefining a word changes every
caller. Built-in words always take precedence over user definitions.

Built-in words:

	*  /  +  -  mod    arithmetic; a b - computes a-b
	=                  -1 if equal, else 0
	and  or  invert    logic, where -1 is true and anything else is false
	dup  swap  clear   stack manipulation; dup of an empty stack does nothing
	.  .s              print and drop the top value; print the whole stack

Inside a do ... loop, i pushes the index of the innermost running loop. The
loop takes its start index from the top of the stack and its exclusive limit
from beneath it, so "5 0 do" counts from 0 to 4.

A failing word reports an error and the rest of the line still runs.

Usage:

	treeforth [-config file.yaml] [-trace] [-dump] [-depth-limit N] [-timeout D] [script...]
	treeforth -batch script...

With no scripts, standard input is read; on a terminal, lines are read with
editing and history. With -batch, each script runs in its own independent
session, concurrently, and their outputs are printed in argument order.
With -dump, the final stack and dictionary are written to standard error
when a non-batch session ends.
*/
package main
