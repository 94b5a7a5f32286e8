package wgccre

// Models from the 2015 WGCCRE report.
// https://astropedia.astrogeology.usgs.gov/download/Docs/WGCCRE/WGCCRE2015reprint.pdf

var sol2015 = model{
	report: Report2015,
	alpha:  series{c0: 286.13},
	delta:  series{c0: 63.87},
	w:      series{c0: 84.176, c1: 14.1844000},
}

var (
	mercuryM1 = perDay(174.7910857, 4.092335)
	mercuryM2 = perDay(349.5821714, 8.184670)
	mercuryM3 = perDay(164.3732571, 12.277005)
	mercuryM4 = perDay(339.1643429, 16.369340)
	mercuryM5 = perDay(153.9554286, 20.461675)
)

var mercury2015 = model{
	report: Report2015,
	alpha:  series{c0: 281.0103, c1: -0.0328},
	delta:  series{c0: 61.4155, c1: -0.0049},
	// W0 is uncertain by ±0.0037.
	w: series{c0: 329.5988, c1: 6.1385108, terms: []term{
		sine(0.01067257, mercuryM1),
		sine(-0.00112309, mercuryM2),
		sine(-0.00011040, mercuryM3),
		sine(-0.00002539, mercuryM4),
		sine(-0.00000571, mercuryM5),
	}},
}

var venus2015 = model{
	report: Report2015,
	alpha:  series{c0: 272.76},
	delta:  series{c0: 67.16},
	w:      series{c0: 160.20, c1: -1.4813688},
}

var mars2015 = model{
	report: Report2015,
	alpha: series{c0: 317.269202, c1: -0.10927547, terms: []term{
		sine(0.000068, perCentury(198.991226, 19139.4819985)),
		sine(0.000238, perCentury(226.292679, 38280.8511281)),
		sine(0.000052, perCentury(249.663391, 57420.7251593)),
		sine(0.000009, perCentury(266.183510, 76560.6367950)),
		sine(0.419057, perCentury(79.398797, 0.5042615)),
	}},
	delta: series{c0: 54.432516, c1: -0.05827105, terms: []term{
		cosine(0.000051, perCentury(122.433576, 19139.9407476)),
		cosine(0.000141, perCentury(43.058401, 38280.8753272)),
		cosine(0.000031, perCentury(57.663379, 57420.7517205)),
		cosine(0.000005, perCentury(79.476401, 76560.6495004)),
		cosine(1.591274, perCentury(166.325722, 0.5042615)),
	}},
	w: series{c0: 176.049863, c1: 350.891982443297, terms: []term{
		sine(0.000145, perCentury(129.071773, 19140.0328244)),
		sine(0.000157, perCentury(36.352167, 38281.0473591)),
		sine(0.000040, perCentury(56.668646, 57420.9295360)),
		sine(0.000001, perCentury(67.364003, 76560.2552215)),
		sine(0.000001, perCentury(104.792680, 95700.4387578)),
		sine(0.584542, perCentury(95.391654, 0.5042615)),
	}},
}

var (
	jupiterJa = perCentury(99.360714, 4850.4046)
	jupiterJb = perCentury(175.895369, 1191.9605)
	jupiterJc = perCentury(300.323162, 262.5475)
	jupiterJd = perCentury(114.012305, 6070.2476)
	jupiterJe = perCentury(49.511251, 64.3000)
)

var jupiter2015 = model{
	report: Report2015,
	alpha: series{c0: 268.056595, c1: -0.006499, terms: []term{
		sine(0.000117, jupiterJa),
		sine(0.000938, jupiterJb),
		sine(0.001432, jupiterJc),
		sine(0.000030, jupiterJd),
		sine(0.002150, jupiterJe),
	}},
	delta: series{c0: 64.495303, c1: 0.002413, terms: []term{
		cosine(0.000050, jupiterJa),
		cosine(0.000404, jupiterJb),
		cosine(0.000617, jupiterJc),
		cosine(-0.000013, jupiterJd),
		cosine(0.000926, jupiterJe),
	}},
	// System III.
	w: series{c0: 284.95, c1: 870.5360000},
}

var saturn2015 = model{
	report: Report2015,
	alpha:  series{c0: 40.589, c1: -0.036},
	delta:  series{c0: 83.537, c1: -0.004},
	w:      series{c0: 38.90, c1: 810.7939024},
}

var uranus2015 = model{
	report: Report2015,
	alpha:  series{c0: 257.311},
	delta:  series{c0: -15.175},
	w:      series{c0: 203.81, c1: -501.1600928},
}

var neptuneN = perCentury(357.85, 52.316)

var neptune2015 = model{
	report: Report2015,
	alpha:  series{c0: 299.36, terms: []term{sine(0.70, neptuneN)}},
	delta:  series{c0: 43.46, terms: []term{cosine(-0.51, neptuneN)}},
	w:      series{c0: 249.978, c1: 541.1397757, terms: []term{sine(-0.48, neptuneN)}},
}
