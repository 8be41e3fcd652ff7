package report

// FakeReporter records everything reported through it.
type FakeReporter struct {
	Reports []float64
	Err     error
	Closed  bool
}

func (f *FakeReporter) Report(kmh float64) error {
	if f.Err != nil {
		return f.Err
	}
	f.Reports = append(f.Reports, kmh)
	return nil
}

func (f *FakeReporter) Close() { f.Closed = true }

// FakePoster scripts the HTTP layer under an HTTPReporter.
type FakePoster struct {
	URLs   []string
	Status int
	Err    error
}

func (f *FakePoster) Post(url string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	f.URLs = append(f.URLs, url)
	if f.Status == 0 {
		return 200, nil
	}
	return f.Status, nil
}
