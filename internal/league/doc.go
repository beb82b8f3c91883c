/*
Package league parses head-to-head game results and computes a ranked
standings table.

Grammar

	file  --> row ( EOL+ row )* EOL* EOF ;
	row   --> team "," team ;
	team  --> name score ;
	name  --> WORD ( WORD )* ;
	score --> NUMBER ;

WORD starts with an ASCII letter and continues with letters, digits, hyphens,
or underscores, so names like "FC Awesome" span several tokens. Spaces and
tabs only separate tokens; the comma may be surrounded by any number of them.
The two teams of a row must have different names.

Scoring

Each game awards 3 points to the winner and none to the loser; a draw awards
1 point to both teams. Standings are ordered by points descending, then team
name ascending ignoring case. Tied teams share a rank, and the team after a
tie group of size N resumes N ranks later.
*/
package league
