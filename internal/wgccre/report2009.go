package wgccre

// Models from the 2009 WGCCRE report.
// https://astropedia.astrogeology.usgs.gov/download/Docs/WGCCRE/WGCCRE2009reprint.pdf

var earth2009 = model{
	report: Report2009,
	alpha:  series{c0: 0.00, c1: -0.641},
	delta:  series{c0: 90.00, c1: -0.557},
	w:      series{c0: 190.147, c1: 360.9856235},
}

// Lunar auxiliary angles E1..E13.
var (
	moonE1  = perDay(125.045, -0.0529921)
	moonE2  = perDay(250.089, -0.1059842)
	moonE3  = perDay(260.008, 13.0120009)
	moonE4  = perDay(176.625, 13.3407154)
	moonE5  = perDay(357.529, 0.9856003)
	moonE6  = perDay(311.589, 26.4057084)
	moonE7  = perDay(134.963, 13.0649930)
	moonE8  = perDay(276.617, 0.3287146)
	moonE9  = perDay(34.226, 1.7484877)
	moonE10 = perDay(15.134, -0.1589763)
	moonE11 = perDay(119.743, 0.0036096)
	moonE12 = perDay(239.961, 0.1643573)
	moonE13 = perDay(25.053, 12.9590088)
)

var moon2009 = model{
	report: Report2009,
	alpha: series{c0: 269.9949, c1: 0.0031, terms: []term{
		sine(-3.8787, moonE1),
		sine(-0.1204, moonE2),
		sine(0.0700, moonE3),
		sine(-0.0172, moonE4),
		sine(0.0072, moonE6),
		sine(-0.0052, moonE10),
		sine(0.0043, moonE13),
	}},
	delta: series{c0: 66.5392, c1: 0.0130, terms: []term{
		cosine(1.5419, moonE1),
		cosine(0.0239, moonE2),
		cosine(-0.0278, moonE3),
		cosine(0.0068, moonE4),
		cosine(-0.0029, moonE6),
		cosine(0.0009, moonE7),
		cosine(0.0008, moonE10),
		cosine(-0.0009, moonE13),
	}},
	w: series{c0: 38.3213, c1: 13.17635815, c2: -1.4e-12, terms: []term{
		sine(3.5610, moonE1),
		sine(0.1208, moonE2),
		sine(-0.0642, moonE3),
		sine(0.0158, moonE4),
		sine(0.0252, moonE5),
		sine(-0.0066, moonE6),
		sine(-0.0047, moonE7),
		sine(-0.0046, moonE8),
		sine(0.0028, moonE9),
		sine(0.0052, moonE10),
		sine(0.0040, moonE11),
		sine(0.0019, moonE12),
		sine(-0.0044, moonE13),
	}},
}
