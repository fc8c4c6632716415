package repository

import (
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
)

// Default datasets written into an empty local store on first read, so the
// application is usable before any backend exists. Ids are fixed (not
// generated) so seeded records are addressable from other seeds.

var seedEpoch = time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "U-1", Name: "Khalid Al-Omari", Role: "Site Supervisor", Avatar: "https://i.pravatar.cc/150?u=U-1", Department: "Operations", JoinDate: "2021-04-12"},
		{ID: "U-2", Name: "Sara Al-Harbi", Role: "Project Manager", Avatar: "https://i.pravatar.cc/150?u=U-2", Department: "Projects", JoinDate: "2019-09-01"},
		{ID: "U-3", Name: "Fahad Al-Mutairi", Role: "Safety Officer", Avatar: "https://i.pravatar.cc/150?u=U-3", Department: "HSE", JoinDate: "2022-01-17"},
		{ID: "U-4", Name: "Noura Al-Qahtani", Role: "Executive Director", Avatar: "https://i.pravatar.cc/150?u=U-4", Department: "Management", JoinDate: "2018-02-05"},
	}
}

func seedProjects() []domain.Project {
	return []domain.Project{
		{
			ID: "P001", Name: "Al Narjis Residential Towers", Code: "NRJ-2023",
			Location: "Riyadh", Status: domain.ProjectActive, Health: domain.HealthGood,
			Budget: 45_000_000, Spent: 21_350_000,
			StartDate: "2023-01-15", EndDate: "2025-06-30",
			ManagerID: "U-2", TeamIDs: []string{"U-1", "U-3"},
			ClientID: "CL-1",
			Milestones: []domain.Milestone{
				{ID: "M-1", Title: "Foundation complete", DueDate: "2023-08-01", Status: "Completed", Progress: 100},
				{ID: "M-2", Title: "Structure to level 12", DueDate: "2024-09-15", Status: "In Progress", Progress: 55},
			},
			Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch,
		},
		{
			ID: "P002", Name: "King Salman Road Extension", Code: "KSR-2023",
			Location: "Riyadh", Status: domain.ProjectActive, Health: domain.HealthAtRisk,
			Budget: 78_500_000, Spent: 61_200_000,
			StartDate: "2023-03-01", EndDate: "2024-12-31",
			ManagerID: "U-2", TeamIDs: []string{"U-1"},
			Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch,
		},
	}
}

func seedWorkItems() []domain.WorkItem {
	return []domain.WorkItem{
		{
			ID: "WI-1001", Title: "Concrete pour approval, tower B level 9",
			Description: "Approve the concrete pour for tower B level 9 slab after rebar inspection.",
			Type:        domain.TypeApproval, Priority: domain.PriorityCritical,
			Status: domain.StatusPendingApproval, ProjectID: "P001",
			AssigneeID: "U-2", CreatorID: "U-1",
			Comments: []domain.Comment{}, Tags: []string{"structural", "tower-b"},
			ApprovalChain: []domain.ApprovalStep{
				{ID: "AS-1", ApproverID: "U-1", ApproverName: "Khalid Al-Omari", Role: "Site Supervisor", Decision: domain.DecisionApproved},
				{ID: "AS-2", ApproverID: "U-2", ApproverName: "Sara Al-Harbi", Role: "Project Manager", Decision: domain.DecisionPending},
				{ID: "AS-3", ApproverID: "U-4", ApproverName: "Noura Al-Qahtani", Role: "Executive Director", Decision: domain.DecisionPending},
			},
			Version: 1, CreatedAt: seedEpoch.Add(2 * time.Hour), UpdatedAt: seedEpoch.Add(2 * time.Hour),
		},
		{
			ID: "WI-1002", Title: "Leaking hydraulic hose on excavator EX-07",
			Description: "Hydraulic fluid leak spotted during morning checks. Unit pulled from rotation.",
			Type:        domain.TypeIncident, Priority: domain.PriorityHigh,
			Status: domain.StatusInProgress, ProjectID: "P002",
			AssigneeID: "U-1", CreatorID: "U-3", AssetID: "AST-2",
			Comments: []domain.Comment{}, Tags: []string{"equipment"},
			Version: 1, CreatedAt: seedEpoch.Add(time.Hour), UpdatedAt: seedEpoch.Add(time.Hour),
		},
		{
			ID: "WI-1003", Title: "Monthly scaffold inspection, zone 3",
			Description: "Scheduled scaffold integrity inspection for zone 3 work fronts.",
			Type:        domain.TypeTask, Priority: domain.PriorityMedium,
			Status: domain.StatusOpen, ProjectID: "P001",
			AssigneeID: "U-3", CreatorID: "U-2",
			Comments: []domain.Comment{}, Tags: []string{"safety", "recurring"},
			DueDate: "2024-03-20",
			Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch,
		},
	}
}

func seedAssets() []domain.Asset {
	return []domain.Asset{
		{ID: "AST-1", Name: "Tower Crane TC-240", SerialNumber: "LBH-2291-A", Category: domain.AssetHeavyEquipment, Status: domain.AssetInUse, Location: "P001 site", Value: 2_400_000, PurchaseDate: "2020-06-14", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
		{ID: "AST-2", Name: "Excavator EX-07", SerialNumber: "CAT-320-0077", Category: domain.AssetHeavyEquipment, Status: domain.AssetMaintenance, Location: "P002 site", Value: 860_000, LastMaintenance: "2024-02-18", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
		{ID: "AST-3", Name: "Survey Total Station", SerialNumber: "TRM-S7-4410", Category: domain.AssetTools, Status: domain.AssetAvailable, Location: "Main warehouse", Value: 95_000, Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
	}
}

func seedMaterials() []domain.Material {
	return []domain.Material{
		{ID: "MAT-1", Name: "Portland Cement Type I", Unit: "ton", CurrentStock: 340, MinThreshold: 100, Category: "Concrete", UnitPrice: 290, Location: "Main warehouse", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
		{ID: "MAT-2", Name: "Rebar 16mm", Unit: "ton", CurrentStock: 85, MinThreshold: 40, Category: "Steel", UnitPrice: 2650, Location: "P001 laydown", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
		{ID: "MAT-3", Name: "Concrete Block 20cm", Unit: "pcs", CurrentStock: 12_000, MinThreshold: 5000, Category: "Masonry", UnitPrice: 3.2, Location: "P001 laydown", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
	}
}

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "EMP-1", Name: "Yusuf Rahman", Role: "Steel Fixer", Department: "Civil Works", BaseSalary: 4200, HourlyRate: 26, JoinDate: "2021-11-02", Status: "Active", CurrentProject: "P001", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
		{ID: "EMP-2", Name: "Imran Siddiqui", Role: "Crane Operator", Department: "Plant", BaseSalary: 6800, HourlyRate: 42, JoinDate: "2020-05-19", Status: "Active", CurrentProject: "P001", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
	}
}

func seedVendors() []domain.Vendor {
	return []domain.Vendor{
		{ID: "V-1", Name: "Saudi Readymix", Category: domain.VendorAgreement, Trade: "Concrete supply", ContactPerson: "Majed Al-Dossari", Phone: "+966-11-4567890", Email: "orders@saudireadymix.example", Rating: 4.6, Status: "Active", PaymentTerms: "Net 45", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
		{ID: "V-2", Name: "Alfanar Electric", Category: domain.VendorCredit, Trade: "Electrical materials", ContactPerson: "Rania Haddad", Phone: "+966-11-2223344", Email: "sales@alfanar.example", Rating: 4.2, Status: "Active", PaymentTerms: "Net 30", Version: 1, CreatedAt: seedEpoch, UpdatedAt: seedEpoch},
	}
}

func seedClients() []domain.Client {
	return []domain.Client{
		{ID: "CL-1", Name: "Abdullah Al-Rashid", Company: "Al-Rashid Development", Email: "a.rashid@alrashid.example", Phone: "+966-50-1112233", Avatar: "https://i.pravatar.cc/150?u=CL-1", LinkedProjectIDs: []string{"P001"}},
	}
}

func seedSubcontractors() []domain.Subcontractor {
	return []domain.Subcontractor{
		{ID: "SC-1", Name: "Gulf Finishing Co.", Trade: "Interior finishing", ContactName: "Omar Bakr", Phone: "+966-55-9876543", PerformanceScore: 4.1, TotalContractValue: 5_600_000, PaidAmount: 2_100_000},
	}
}

func seedPermits() []domain.Permit {
	return []domain.Permit{
		{ID: "PRM-1", ProjectID: "P001", Authority: "Municipality", Title: "Building permit, phase A", Status: "Active", IssueDate: "2023-01-01", ExpiryDate: "2024-01-01"},
		{ID: "PRM-2", ProjectID: "P001", Authority: "Civil Defense", Title: "Structural safety certificate", Status: "Renewal", IssueDate: "2023-05-10", ExpiryDate: "2023-11-10"},
	}
}

func seedLetters() []domain.LetterOfGuarantee {
	return []domain.LetterOfGuarantee{
		{ID: "LG-1", ProjectID: "P001", BankName: "SABB Bank", Type: "Performance Bond", Amount: 500_000, IssueDate: "2023-01-01", ExpiryDate: "2024-06-30", Status: "Active"},
		{ID: "LG-2", ProjectID: "P001", BankName: "SABB Bank", Type: "Advance Payment", Amount: 1_200_000, IssueDate: "2023-01-01", ExpiryDate: "2024-06-30", Status: "Active"},
	}
}

func seedBlueprints() []domain.Blueprint {
	return []domain.Blueprint{
		{
			ID: "BP-1", ProjectID: "P001", Title: "Structural plan, ground floor",
			ImageURL: "https://images.example/blueprints/bp-1.png", Version: "V2.1",
			Pins: []domain.TaskPin{
				{ID: "p1", WorkItemID: "WI-1001", X: 25.5, Y: 40.2, Type: domain.TypeApproval, Priority: domain.PriorityCritical},
				{ID: "p2", WorkItemID: "WI-1003", X: 60.1, Y: 55.8, Type: domain.TypeTask, Priority: domain.PriorityMedium},
			},
		},
	}
}

func seedArticles() []domain.Article {
	return []domain.Article{
		{ID: "KB-1", Title: "Concrete pour checklist", Category: "Quality", AuthorName: "Sara Al-Harbi", LastUpdated: seedEpoch, Tags: []string{"concrete", "qc"}, Content: "Pre-pour inspection steps: formwork, rebar cover, embedded items, weather window."},
		{ID: "KB-2", Title: "Incident reporting procedure", Category: "HSE", AuthorName: "Fahad Al-Mutairi", LastUpdated: seedEpoch, Tags: []string{"safety"}, Content: "Report incidents within one hour through the field app. Include location, photos, and witnesses."},
	}
}

func seedAutomationRules() []domain.AutomationRule {
	return []domain.AutomationRule{
		{ID: "r1", Name: "Safety routing", Description: "Route incident reports to the site supervisor immediately.", IsEnabled: true, Trigger: "On Create"},
		{ID: "r2", Name: "Critical SLA", Description: "Set the due date to 24 hours for critical items.", IsEnabled: true, Trigger: "On Create"},
	}
}
