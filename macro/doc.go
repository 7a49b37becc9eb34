/*

The macro package implements Pass-I of a two-pass macro processor for an
assembler-like language. You construct the Processor object and then call
Process (or ProcessFile) on the source lines. This walks the source once,
recognises macro definitions bracketed by the MACRO and MEND directives,
records each macro in the Macro-Name Table (MNT), rewrites every formal
parameter reference in the definition as a positional placeholder of the
form (P,i) and stores the rewritten lines in the Macro-Definition Table
(MDT). Lines outside any definition are copied, unchanged and in order,
into the intermediate stream.

Once a run has completed without error the tables and the intermediate
stream can be written out with WriteArtifacts in the tab-separated layouts
that Pass-II (the macro-expansion pass) reads, or rendered for a person
with Print.

Any syntax error stops the run at the line where it was detected and
nothing is written: Pass-II must only ever see a complete, consistent set
of tables.

*/
package macro
