package employee

// SampleEmployees is the built-in dataset used when neither a SQLite store
// nor a JSON data file is configured.
var SampleEmployees = []Employee{
	{
		ID:              1,
		Name:            "Alice Johnson",
		Skills:          []string{"Python", "React", "AWS"},
		ExperienceYears: 5,
		Projects:        []string{"E-commerce Platform", "Healthcare Dashboard"},
		Availability:    Available,
		Department:      "Engineering",
		Location:        "New York",
		Specializations: []string{"Full-stack Development"},
	},
	{
		ID:              2,
		Name:            "Raj Patel",
		Skills:          []string{"Java", "Spring Boot", "PostgreSQL"},
		ExperienceYears: 7,
		Projects:        []string{"Payment Gateway", "Inventory System"},
		Availability:    Busy,
		Department:      "Engineering",
		Location:        "Austin",
	},
	{
		ID:              3,
		Name:            "Maria Garcia",
		Skills:          []string{"Python", "TensorFlow", "PyTorch", "AWS"},
		ExperienceYears: 6,
		Projects:        []string{"Medical Diagnosis Platform", "Fraud Detection Model"},
		Availability:    Available,
		Department:      "Data Science",
		Location:        "San Francisco",
		Specializations: []string{"Machine Learning", "Computer Vision"},
	},
	{
		ID:              4,
		Name:            "Chen Wei",
		Skills:          []string{"JavaScript", "TypeScript", "Vue", "Node"},
		ExperienceYears: 3,
		Projects:        []string{"Marketing Site Redesign", "Analytics Dashboard"},
		Availability:    Available,
		Department:      "Engineering",
		Location:        "Seattle",
	},
	{
		ID:              5,
		Name:            "Sarah Kim",
		Skills:          []string{"Python", "Django", "Redis", "Docker"},
		ExperienceYears: 4,
		Projects:        []string{"Booking Service", "Notification Pipeline"},
		Availability:    OnLeave,
		Department:      "Engineering",
		Location:        "Chicago",
		Specializations: []string{"Backend Development"},
	},
	{
		ID:              6,
		Name:            "David Okafor",
		Skills:          []string{"Go", "Kubernetes", "Docker", "AWS"},
		ExperienceYears: 8,
		Projects:        []string{"Container Platform Migration", "Service Mesh Rollout"},
		Availability:    Available,
		Department:      "Platform",
		Location:        "Remote",
		Specializations: []string{"DevOps", "Cloud Architecture"},
	},
	{
		ID:              7,
		Name:            "Emma Schmidt",
		Skills:          []string{"Python", "scikit-learn", "SQL", "Data Science"},
		ExperienceYears: 2,
		Projects:        []string{"Churn Prediction", "Sales Forecasting"},
		Availability:    Available,
		Department:      "Data Science",
		Location:        "Boston",
	},
	{
		ID:              8,
		Name:            "Lucas Ferreira",
		Skills:          []string{"React", "TypeScript", "HTML", "CSS"},
		ExperienceYears: 5,
		Projects:        []string{"Design System", "Customer Portal"},
		Availability:    Busy,
		Department:      "Engineering",
		Location:        "Miami",
		Specializations: []string{"Frontend Architecture"},
	},
	{
		ID:              9,
		Name:            "Priya Sharma",
		Skills:          []string{"Java", "AWS", "MongoDB", "Kafka"},
		ExperienceYears: 9,
		Projects:        []string{"Event Streaming Platform", "Order Management System"},
		Availability:    Available,
		Department:      "Engineering",
		Location:        "Denver",
		Specializations: []string{"Distributed Systems"},
	},
	{
		ID:              10,
		Name:            "Tom Nakamura",
		Skills:          []string{"Python", "FastAPI", "PostgreSQL", "Docker"},
		ExperienceYears: 6,
		Projects:        []string{"Internal API Gateway", "Billing Service"},
		Availability:    Available,
		Department:      "Engineering",
		Location:        "Portland",
	},
	{
		ID:              11,
		Name:            "Anna Kowalski",
		Skills:          []string{"Machine Learning", "PyTorch", "Python", "GCP"},
		ExperienceYears: 4,
		Projects:        []string{"Recommendation Engine", "Image Moderation Pipeline"},
		Availability:    Busy,
		Department:      "Data Science",
		Location:        "New York",
		Specializations: []string{"Deep Learning", "NLP"},
	},
	{
		ID:              12,
		Name:            "James Wright",
		Skills:          []string{"Angular", "JavaScript", "Node", "Express"},
		ExperienceYears: 7,
		Projects:        []string{"Admin Console", "Reporting Suite"},
		Availability:    Available,
		Department:      "Engineering",
		Location:        "Atlanta",
	},
	{
		ID:              13,
		Name:            "Fatima Al-Rashid",
		Skills:          []string{"Rust", "Go", "Kubernetes"},
		ExperienceYears: 3,
		Projects:        []string{"Edge Proxy", "Metrics Collector"},
		Availability:    Available,
		Department:      "Platform",
		Location:        "Toronto",
	},
	{
		ID:              14,
		Name:            "Michael Brown",
		Skills:          []string{"SQL", "Python", "Azure", "Data Science"},
		ExperienceYears: 10,
		Projects:        []string{"Data Warehouse Migration", "Executive Dashboards"},
		Availability:    OnLeave,
		Department:      "Data Science",
		Location:        "Dallas",
		Specializations: []string{"Data Engineering"},
	},
	{
		ID:              15,
		Name:            "Sofia Rossi",
		Skills:          []string{"Python", "Flask", "Redis", "AWS"},
		ExperienceYears: 5,
		Projects:        []string{"Search Service", "Session Store Revamp"},
		Availability:    Available,
		Department:      "Engineering",
		Location:        "Remote",
	},
}
