package jcube

// hexTable lists the 20 cells of the 6x6x6 split grid that survive carving
// the cross-shaped tunnels on all three axes. Each row holds one hexahedron's
// 8 corners in Cube corner order, as indices into the 216-point grid built by
// Subdivide (index = 36*iz + 6*iy + ix).
//
// The 8 corner cells have edge h times the parent edge; the 12 edge cells
// (4 in the lower slab, 4 in the upper slab, 4 vertical in the middle layer)
// have edge h^2 times the parent edge.
var hexTable = [20][8]int{
	// Corner cells.
	{0, 2, 12, 14, 72, 74, 84, 86},
	{3, 5, 15, 17, 75, 77, 87, 89},
	{18, 20, 30, 32, 90, 92, 102, 104},
	{21, 23, 33, 35, 93, 95, 105, 107},
	{108, 110, 120, 122, 180, 182, 192, 194},
	{111, 113, 123, 125, 183, 185, 195, 197},
	{126, 128, 138, 140, 198, 200, 210, 212},
	{129, 131, 141, 143, 201, 203, 213, 215},

	// Lower slab edge cells.
	{2, 3, 8, 9, 38, 39, 44, 45},
	{26, 27, 32, 33, 62, 63, 68, 69},
	{12, 13, 18, 19, 48, 49, 54, 55},
	{16, 17, 22, 23, 52, 53, 58, 59},

	// Upper slab edge cells.
	{146, 147, 152, 153, 182, 183, 188, 189},
	{170, 171, 176, 177, 206, 207, 212, 213},
	{156, 157, 162, 163, 192, 193, 198, 199},
	{160, 161, 166, 167, 196, 197, 202, 203},

	// Middle layer vertical edge cells.
	{72, 73, 78, 79, 108, 109, 114, 115},
	{76, 77, 82, 83, 112, 113, 118, 119},
	{96, 97, 102, 103, 132, 133, 138, 139},
	{100, 101, 106, 107, 136, 137, 142, 143},
}
