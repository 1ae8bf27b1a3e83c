/*
Package maze generates perfect mazes: spanning trees over a rectangular grid where every
cell is reachable from every other through exactly one path.

A Maze keeps two flat edge arrays. Horizontal edges cross row boundaries and carry
North/South movement; vertical edges cross column boundaries and carry East/West
movement. New allocates both arrays as walls and carves them with an iterative
randomized depth-first backtracker driven by an injectable Shuffler, so a fixed seed
always yields the same maze.

After construction a Maze is read-only. Move, EdgeAt and Exits answer navigation
queries; String renders the maze as text and ConnectivityMap rasterizes it into a 0/1
grid at twice the linear resolution for image exporters.
*/
package maze
