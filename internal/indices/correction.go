package indices

// correctionFactorTable is the pre-cutover monthly correction index
// ("fator de correção monetária"), one row per year, January through
// December. Restating a value from month M to the cutover divides by the
// factor at M and multiplies by the December 2021 ceiling factor.
var correctionFactorTable = map[int][12]float64{
	1995: {94.6416, 94.8304, 95.2709, 95.8656, 96.5645, 96.9857, 97.2584, 97.8299, 98.3067, 98.7972, 99.2578, 99.6256},
	1996: {100.0000, 100.2213, 100.4974, 100.5970, 100.8750, 101.2021, 101.3927, 101.7285, 102.0267, 102.2404, 102.3677, 102.4915},
	1997: {102.6112, 102.7505, 102.9807, 103.0784, 103.1537, 103.2526, 103.4486, 103.5882, 103.7025, 103.9254, 104.0140, 104.2203},
	1998: {104.4651, 104.5847, 104.7078, 104.7516, 104.7975, 104.8527, 104.9999, 105.0987, 105.2018, 105.3196, 105.4776, 105.5493},
	1999: {105.6768, 105.9302, 106.0192, 106.1457, 106.3638, 106.4750, 106.7998, 106.8972, 107.2078, 107.5216, 107.7692, 107.9062},
	2000: {108.0243, 108.2378, 108.4633, 108.5954, 108.7282, 108.8973, 109.1323, 109.2775, 109.5251, 109.7108, 109.8378, 110.1092},
	2001: {110.2159, 110.4709, 110.7651, 111.0631, 111.1645, 111.4009, 111.6296, 111.7581, 111.9377, 112.0885, 112.3698, 112.6312},
	2002: {112.8128, 112.9703, 113.4179, 113.8253, 114.0997, 114.4915, 114.8464, 115.2719, 115.5996, 116.0887, 116.2838, 116.6178},
	2003: {116.9854, 117.2966, 117.4390, 117.8218, 117.9991, 118.2131, 118.3869, 118.8362, 118.9666, 119.1592, 119.5282, 119.9511},
	2004: {120.1552, 120.2667, 120.5683, 120.6858, 120.7790, 121.0655, 121.2458, 121.5352, 121.8278, 121.9453, 122.1807, 122.5024},
	2005: {122.5907, 122.7022, 122.8892, 123.1223, 123.3764, 123.4588, 123.5444, 123.7693, 124.0379, 124.1197, 124.3909, 124.5969},
	2006: {124.8270, 124.9688, 125.1041, 125.2110, 125.3548, 125.4782, 125.5335, 125.6331, 125.7644, 125.8267, 125.9116, 126.0276},
	2007: {126.2036, 126.3331, 126.4116, 126.6253, 126.6937, 126.8256, 127.0350, 127.1149, 127.2611, 127.4244, 127.5774, 127.6552},
	2008: {127.8112, 127.9994, 128.1479, 128.4564, 128.7443, 129.0506, 129.3642, 129.6090, 129.7604, 130.0438, 130.2294, 130.3517},
	2009: {130.6379, 130.8541, 131.0437, 131.2594, 131.3228, 131.5383, 131.6366, 131.7500, 131.8747, 131.9897, 132.2120, 132.3212},
	2010: {132.4966, 132.6070, 132.8540, 133.0973, 133.4180, 133.7067, 134.0153, 134.1762, 134.3398, 134.4920, 134.5968, 134.8218},
	2011: {135.0340, 135.3201, 135.6185, 135.8460, 135.9694, 136.2165, 136.4014, 136.5433, 136.6989, 136.9328, 137.1510, 137.4153},
	2012: {137.5807, 137.8714, 138.1347, 138.3803, 138.5437, 138.6754, 138.8598, 139.1405, 139.3431, 139.5678, 139.8889, 140.0582},
	2013: {140.3731, 140.5078, 140.7349, 141.0303, 141.3253, 141.5887, 141.8255, 141.9823, 142.2156, 142.3793, 142.5877, 142.7629},
	2014: {143.0424, 143.1660, 143.4080, 143.5594, 143.7542, 143.9706, 144.0833, 144.4401, 144.7146, 144.9700, 145.3329, 145.5081},
	2015: {145.6304, 146.1097, 146.7166, 147.1844, 147.7785, 148.2548, 148.4881, 148.9505, 149.3256, 149.7277, 149.9726, 150.5496},
	2016: {150.8736, 151.1614, 151.4740, 151.8107, 151.9325, 152.2182, 152.5717, 152.9260, 153.0931, 153.2979, 153.4699, 153.7906},
	2017: {154.0425, 154.2228, 154.4011, 154.4972, 154.6696, 154.7206, 154.8281, 154.9738, 155.0925, 155.1949, 155.3302, 155.3933},
	2018: {155.4453, 155.6853, 155.8467, 155.9992, 156.2472, 156.4945, 156.7169, 156.8135, 156.9326, 157.1599, 157.3590, 157.5161},
	2019: {157.6026, 157.8089, 158.0137, 158.2772, 158.5029, 158.7233, 158.9001, 159.0336, 159.2564, 159.4366, 159.5429, 159.7127},
	2020: {159.9581, 160.1131, 160.2972, 160.5110, 160.8038, 160.9961, 161.1556, 161.3328, 161.5830, 161.6807, 161.9105, 162.0948},
	2021: {162.3243, 162.6885, 163.1511, 163.3835, 163.6472, 164.0753, 164.3946, 164.9428, 165.3955, 165.7763, 166.2180, 166.6584},
}
