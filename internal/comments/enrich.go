package comments

import (
	"fmt"
	"math/rand"
	"time"
)

const enrichDateFormat = "2006:01:02"

// Enrich attaches a synthetic post-info block to every comment that does not
// already carry one: a random time of day, a random date between 2010-01-01
// and yesterday, and a random IPv4 address.
func (s Set) Enrich(rnd *rand.Rand) Set {
	enriched := s.Comments()
	for i := range enriched {
		if enriched[i].PostInfo != "" {
			continue
		}
		enriched[i].PostInfo = fmt.Sprintf("Time: %s\nDate: %s\nIP address: %s",
			randomTime(rnd), randomDate(rnd), randomIP(rnd))
	}
	return NewSet(enriched)
}

func randomTime(rnd *rand.Rand) string {
	secs := rnd.Intn(24 * 60 * 60)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

func randomDate(rnd *rand.Rand) string {
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	yesterday := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	days := int(yesterday.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return start.AddDate(0, 0, rnd.Intn(days)).Format(enrichDateFormat)
}

func randomIP(rnd *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		rnd.Intn(256), rnd.Intn(256), rnd.Intn(256), rnd.Intn(256))
}
