/*

The asmpass package implements Pass-I of a two-pass assembler for a small
pseudo-machine. You construct the Pass1 object and then call Process (or
ProcessFile) on the source lines. This walks the source once, maintaining
the location counter, and builds the symbol table (with forward
references), the literal table and the pool table while recording every
line, tagged with the location counter it was processed at, for the
intermediate file that Pass-II consumes.

The assembler knows a small imperative instruction set (MOVER, MOVEM, ADD,
SUB, MULT, DIV, BC, COMP, READ and PRINT, each one word long), the
directives START, END, ORIGIN, EQU, LTORG, DS and DC, the registers AREG
to DREG and literals of the forms =5, =-3 and ='A'. Everything else is
kept in the intermediate record but consumes no address space.

*/
package asmpass
