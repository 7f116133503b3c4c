package chanlun

// DetectZhongshus scans contiguous bi triples for overlap regions and
// extends an existing active zhongshu when a later triple's third bi
// intersects it.
func DetectZhongshus(bis []Bi) []Zhongshu {
	if len(bis) < 3 {
		return nil
	}

	zhongshus := make([]Zhongshu, 0)

	for i := 0; i+2 < len(bis); i++ {
		b0, b1, b2 := bis[i], bis[i+1], bis[i+2]

		h0, l0 := b0.RangeHighLow()
		h1, l1 := b1.RangeHighLow()
		h2, l2 := b2.RangeHighLow()

		zHigh := minOf3(h0, h1, h2)
		zLow := maxOf3(l0, l1, l2)
		if zHigh <= zLow {
			continue
		}

		extended := false
		for zi := len(zhongshus) - 1; zi >= 0; zi-- {
			z := &zhongshus[zi]
			if !z.Active {
				continue
			}
			lastBiID := z.BiIDs[len(z.BiIDs)-1]
			if lastBiID >= b0.ID {
				continue
			}
			thirdHigh, thirdLow := b2.RangeHighLow()
			if rangesIntersect(thirdLow, thirdHigh, z.Low, z.High) {
				z.EndTime = b2.End.Time
				z.BiIDs = append(z.BiIDs, b2.ID)
				extended = true
			}
			break
		}
		if extended {
			continue
		}

		zhongshus = append(zhongshus, Zhongshu{
			ID:        len(zhongshus),
			High:      zHigh,
			Low:       zLow,
			StartTime: b0.Start.Time,
			EndTime:   b2.End.Time,
			BiIDs:     []int{b0.ID, b1.ID, b2.ID},
			Active:    true,
		})
	}

	return zhongshus
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
