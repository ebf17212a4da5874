package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	PageViews       *prometheus.CounterVec
	PostsCreated    *prometheus.CounterVec
	CommentsCreated *prometheus.CounterVec
	FollowRequests  *prometheus.CounterVec
	NotFound        *prometheus.CounterVec
}

func InitMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

// NewMetrics регистрирует счетчики в переданном реестре
// (в тестах - отдельный prometheus.NewRegistry()).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_views",
				Help: "Total number of rendered pages",
			},
			[]string{"page"},
		),
		PostsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posts_created",
				Help: "Total number of successfully created or edited posts",
			},
			[]string{"action"},
		),
		CommentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comments_created",
				Help: "Total number of successfully created comments",
			},
			[]string{"page"},
		),
		FollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "follow_requests",
				Help: "Total number of follow/unfollow requests",
			},
			[]string{"action"},
		),
		NotFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "not_found_responses",
				Help: "Total number of 404 responses",
			},
			[]string{"page"},
		),
	}

	reg.MustRegister(m.PageViews)
	reg.MustRegister(m.PostsCreated)
	reg.MustRegister(m.CommentsCreated)
	reg.MustRegister(m.FollowRequests)
	reg.MustRegister(m.NotFound)

	return m
}
