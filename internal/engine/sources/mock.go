package sources

import (
	"time"

	"github.com/bertramb10/jobscout/internal/engine"
)

// MockJobs returns demonstration postings used when every feed comes
// back empty, so the pipeline downstream always has something to show.
func MockJobs() []engine.JobRecord {
	daysAgo := func(n int) string {
		return time.Now().Add(-time.Duration(n) * 24 * time.Hour).UTC().Format(time.RFC3339)
	}

	return []engine.JobRecord{
		{
			ID:           "mock-1",
			Title:        "Software Udvikler - .NET/C#",
			Company:      "TechDanmark A/S",
			Location:     "København",
			Description:  "Vi søger en dygtig software udvikler med erfaring i .NET og C#. Du kommer til at arbejde med moderne cloud-baserede løsninger i Azure, og du får mulighed for at arbejde med spændende projekter i et agilt team. Vi forventer erfaring med C#, .NET Core, Azure, SQL, og gerne TypeScript. Vi tilbyder en spændende arbejdsplads med gode udviklingsmuligheder.",
			URL:          "https://www.jobindex.dk",
			PostedDate:   daysAgo(2),
			Salary:       "45000 - 55000 DKK",
			ContractType: "Fastansættelse",
		},
		{
			ID:           "mock-2",
			Title:        "Frontend Developer - React & TypeScript",
			Company:      "Digital Solutions ApS",
			Location:     "Aarhus",
			Description:  "Er du skarp til React og TypeScript? Vi søger en frontend developer til vores voksende team. Du kommer til at arbejde med moderne webudvikling, responsive design, og brugervenlige interfaces. Erfaring med React, TypeScript, HTML, CSS, og gerne Next.js er et must. Vi tilbyder flexibilitet, gode kolleger, og spændende projekter.",
			URL:          "https://www.jobindex.dk",
			PostedDate:   daysAgo(5),
			Salary:       "42000 - 52000 DKK",
			ContractType: "Fastansættelse",
		},
		{
			ID:           "mock-3",
			Title:        "Full Stack Udvikler - JavaScript/Node.js",
			Company:      "Innovation Labs",
			Location:     "Odense",
			Description:  "Vi mangler en full stack udvikler der kan arbejde med både frontend og backend. Du skal have erfaring med JavaScript, Node.js, React, og databaser som MongoDB eller SQL. Vi arbejder agilt med SCRUM, og du får mulighed for at påvirke teknologivalg og arkitektur. Godt arbejdsmiljø og udviklingsmuligheder.",
			URL:          "https://www.jobindex.dk",
			PostedDate:   daysAgo(1),
			ContractType: "Fastansættelse",
		},
		{
			ID:           "mock-4",
			Title:        "DevOps Engineer - Kubernetes & Azure",
			Company:      "CloudOps Denmark",
			Location:     "København",
			Description:  "Søger erfaren DevOps engineer til at arbejde med cloud infrastructure, CI/CD pipelines, og containerization. Du skal have erfaring med Docker, Kubernetes, Azure DevOps, Terraform, og Infrastructure as Code. Vi tilbyder et teknisk udfordrende miljø hvor du kan arbejde med cutting-edge teknologier.",
			URL:          "https://www.jobindex.dk",
			PostedDate:   daysAgo(7),
			Salary:       "50000 - 65000 DKK",
			ContractType: "Fastansættelse",
		},
		{
			ID:           "mock-5",
			Title:        "Junior Softwareudvikler - C# .NET",
			Company:      "StartUp Solutions",
			Location:     "Aalborg",
			Description:  "Ny-uddannet eller junior udvikler søges til vores udviklingsteam. Du får mulighed for at lære fra erfarne udviklere og arbejde med C#, .NET, Azure, og SQL. Vi lægger vægt på læring og udvikling, og du får god onboarding og mentoring. Perfekt for dig der lige er færdiguddannet som IT-Teknolog eller Datamatiker.",
			URL:          "https://www.jobindex.dk",
			PostedDate:   daysAgo(3),
			Salary:       "38000 - 45000 DKK",
			ContractType: "Fastansættelse",
		},
	}
}
