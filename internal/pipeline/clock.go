package pipeline

import "time"

// nowUTC is injectable for tests.
var nowUTC = func() time.Time { return time.Now().UTC() }
