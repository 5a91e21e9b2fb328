package award

var departmentCriteria = []Criterion{
	{
		ID:    "dept-plan",
		Title: Text{Ar: "التخطيط", En: "Planning"},
		Description: Text{
			Ar: "هل تقوم الوحدة التنظيمية بتطوير وتنفيذ ومراجعة خطتها التشغيلية بما يتوافق مع احتياجات وتوقعات أصحاب المصلحة وبما يضمن توافق عملياتها وهيكلها مع الخطة الاستراتيجية لـ SAM؟",
			En: "Does the organizational unit develop, implement, and review its operational plan in line with stakeholder needs and expectations, ensuring alignment of its operations and structure with SAM's strategic plan?",
		},
		Points: "200",
		EvidenceAr: []string{
			"نشر وتعزيز رسالة ورؤية وقيم الشارقة لإدارة الأصول وربطها بالخطة وأعمال الوحدة التنظيمية وترابطها مع العمل اليومي",
			"كيفية تحديد قياس أداء الوحدة التنظيمية ووسائل المتابعة والمراجعة وتحسين الأداء بالترابط والارتباط مع نظام إدارة الأداء المؤسسي",
			"التفاعل المباشر والمستمر مع المعنيين (أصحاب المصلحة) مثل: العملاء، الشركاء، المجتمع بحسب طبيعة أعمال الوحدة التنظيمية",
			"تشجيع ودعم ثقافة التميز بين الموظفين في الوحدة التنظيمية",
			"التكيف والمرونة في عمليات إدارة التغيير بما يتوافق مع الثقافة المؤسسية للشارقة لإدارة الأصول",
			"تحويل الخطة الاستراتيجية لشركة الشارقة لإدارة الأصول إلى خطة تشغيلية واضحة تعتمد على فهم احتياجات وتوقعات المعنيين (أصحاب المصلحة)",
			"الاستفادة من الخطة الاستراتيجية لشركة الشارقة لإدارة الأصول بتطوير خطة تشغيلية واضحة تحقق متطلبات نظام إدارة الأداء وأهداف الوحدة التنظيمية",
			"التحسين المستمر للخطة التشغيلية وتحديثها مع السياسات والإجراءات المؤسسية",
			"التطبيق الشامل لنظام إدارة الأداء والسياسات والإجراءات والعمليات الخاصة بالوحدة التنظيمية بالتوافق مع الخطة الاستراتيجية لشركة الشارقة لإدارة الأصول",
		},
		EvidenceEn: []string{
			"Examples of the department's role in spreading and promoting SAM's mission, vision, and values and linking them to the unit's plan and daily operations",
			"How to define organizational unit performance measurement, monitoring, review, and improvement methods linked to the institutional performance management system",
			"Direct and continuous interaction with stakeholders such as customers, partners, and community according to the organizational unit's nature of work",
			"Encouraging and supporting a culture of excellence among employees in the organizational unit",
			"Adaptability and flexibility in change management processes aligned with SAM's corporate culture",
			"Converting SAM's strategic plan into a clear operational plan based on understanding stakeholder needs and expectations",
			"Leveraging SAM's strategic plan to develop a clear operational plan that meets performance management system requirements and organizational unit objectives",
			"Continuous improvement and updating of the operational plan with corporate policies and procedures",
			"Comprehensive implementation of the performance management system, policies, procedures, and processes of the organizational unit aligned with SAM's strategic plan",
		},
	},
	{
		ID:    "dept-resources",
		Title: Text{Ar: "الموارد والممتلكات", En: "Resources & Assets"},
		Description: Text{
			Ar: "كيف تلبي الوحدة التنظيمية تصورات ومواقف أصحاب المصلحة من خلال الإدارة الفعالة لعمليات الأعمال وعلاقات أصحاب المصلحة على المدى الطويل وتخلق قيمة مستدامة؟",
			En: "How does the organizational unit meet stakeholder perceptions and attitudes through effective management of business processes and long-term stakeholder relationships to create sustainable value?",
		},
		Points: "300",
		EvidenceAr: []string{
			"الإدارة الفعّالة للموارد المالية، بما في ذلك وضع خطة تشغيلية واضحة، وفهم التكاليف اليومية، وتحسين الكفاءة، والتحكم في النفقات العامة، وتأمين التمويل المناسب للمشاريع والمبادرات",
			"الإدارة الفعّالة لأصول تقنية المعلومات لدعم الكفاءة التشغيلية، والتمكين الرقمي، والتميز في تقديم الخدمات",
			"الإدارة الفعّالة للمعرفة، بما في ذلك ضمان جمع المعرفة ومشاركتها واستخدامها لدعم اتخاذ القرارات والتعلم والتحسين المستمر",
			"التصميم والإدارة الفعّالة للعمليات والإجراءات لتقديم خدمات ذات قيمة مضافة وتحقيق نتائج إيجابية لجميع أصحاب المصلحة",
			"الإدارة الفعّالة للشراكات، بما في ذلك الاتفاقيات الداخلية والخارجية مثل اتفاقيات مستوى الخدمة (SLAs) أو مذكرات التفاهم (MOUs)، لتعزيز الأداء وخلق القيمة",
			"التحسين المستمر لعمليات وإجراءات الأعمال من خلال تطبيق أساليب الإبداع والابتكار لتلبية احتياجات وتوقعات أصحاب المصلحة وتجاوزها",
			"تطوير خدمات جديدة وتحسين الخدمات الحالية باستمرار لإضافة قيمة لأصحاب المصلحة وتعزيز النتائج",
			"تطبيق أساليب تسويقية واتصالات فعّالة لضمان الوعي الكامل بنطاق عمل الوحدة التنظيمية، بما في ذلك تسليط الضوء بوضوح على المبادرات والمشاريع الرئيسية",
			"استخدام قياس الأداء الفعّال ومؤشرات الأداء الرئيسية لرصد التقدم ودعم الوحدة التنظيمية في تحقيق أهدافها",
			"وضع أهداف وغايات واضحة وقابلة للقياس لنتائج أصحاب المصلحة، بناءً على احتياجاتهم وتوقعاتهم",
			"إدارة العلاقات مع جميع أصحاب المصلحة وتحسينها باستمرار لتعزيز الثقة والمشاركة طويلة الأمد",
			"جمع ملاحظات أصحاب المصلحة وتحليلها واستخدامها بشكل منهجي لتحسين الخدمات، وتطوير العروض الحالية، أو ابتكار حلول جديدة، بما في ذلك تصنيف أصحاب المصلحة لدعم خلق قيمة مستدامة",
		},
		EvidenceEn: []string{
			"Effective management of financial resources, including developing a clear operational plan, understanding daily costs, improving efficiency, controlling overhead expenses, and securing appropriate funding for projects and initiatives",
			"Effective management of IT assets to support operational efficiency, digital enablement, and service delivery excellence",
			"Effective knowledge management, including ensuring knowledge is captured, shared, and used to support decision-making, learning, and continuous improvement",
			"Effective design and management of processes and procedures to deliver value-added services and achieve positive results for all stakeholders",
			"Effective management of partnerships, including internal and external agreements such as SLAs or MOUs, to enhance performance and create value",
			"Continuous improvement of business processes and procedures through applying creativity and innovation methods to meet and exceed stakeholder needs and expectations",
			"Developing new services and continuously improving existing ones to add value for stakeholders and enhance results",
			"Applying effective marketing and communication methods to ensure full awareness of the organizational unit's scope, including clearly highlighting key initiatives and projects",
			"Using effective performance measurement and KPIs to monitor progress and support the organizational unit in achieving its objectives",
			"Setting clear and measurable objectives and goals for stakeholder outcomes, based on their needs and expectations",
			"Managing and continuously improving relationships with all stakeholders to enhance trust and long-term engagement",
			"Systematically collecting, analyzing, and using stakeholder feedback to improve services, develop existing offerings, or innovate new solutions, including stakeholder classification to support sustainable value creation",
		},
	},
	{
		ID:    "dept-people",
		Title: Text{Ar: "الموارد البشرية", En: "Human Resources"},
		Description: Text{
			Ar: "ما الذي تحققه الوحدة التنظيمية فيما يتعلق بموظفيها؟",
			En: "What does the organizational unit achieve regarding its employees?",
		},
		Points: "200",
		EvidenceAr: []string{
			"تخطيط وإدارة الموارد البشرية بشكل فعال",
			"تحديد وتحسين مهارات وكفاءات الموارد البشرية",
			"التمكين والمشاركة الفعّالة لجميع الموظفين داخل نفس الوحدة التنظيمية",
			"التواصل الفعّال مع جميع الموظفين",
			"تقدير ومكافأة جهود جميع الموظفين داخل الوحدة التنظيمية بطريقة عادلة",
			"استخدام مقاييس ومؤشرات أداء ذات مغزى لقياس جهد الموظفين ووضع أهداف واقعية لهم",
			"فهم وتصنيف نتائج أداء الموظفين لفهم احتياجات وتوقعات شركة الشارقة لإدارة الأصول",
			"العمل على استدامة نتائج الموظفين بطرق إيجابية (مثال: كيفية العمل على تحقيق نتائج إيجابية لمدة 3 سنوات)",
		},
		EvidenceEn: []string{
			"Effectively planning and managing human resources",
			"Identifying and improving human resources skills and competencies",
			"Effective empowerment and engagement of all employees within the same organizational unit",
			"Effective communication with all employees",
			"Fairly recognizing and rewarding the efforts of all employees within the organizational unit",
			"Using meaningful performance measures and indicators to measure employee efforts and set realistic goals",
			"Understanding and classifying employee performance results to understand SAM's needs and expectations",
			"Working on sustaining employee results in positive ways (e.g., how to achieve positive results for 3 years)",
		},
	},
	{
		ID:    "dept-results",
		Title: Text{Ar: "النتائج", En: "Results"},
		Description: Text{
			Ar: "ما الذي تحققه الوحدة التنظيمية من نتائج — دفع الأداء والتحول؟",
			En: "What does the organizational unit achieve in terms of results — driving performance and transformation?",
		},
		Points: "300",
		EvidenceAr: []string{
			"تحقيق نتائج أداء فوق العادة بما يضمن استدامة الأعمال للوحدة التنظيمية ويلبي أيضًا توقعات المعنيين",
			"تطوير وتحقيق مجموعة من النتائج المالية والنتائج غير المالية لقياس التنفيذ الدقيق لخطط الوحدة التنظيمية التي تدعم استراتيجيات عملها وعملياتها والعمل اليومي",
			"وضع ومستوى تحقيق أهداف واضحة للوحدة التنظيمية لقياس نتائج الأداء الرئيسية بناءً على توقعات الإدارة العليا",
			"تصنيف وتبويب نتائج الوحدة التنظيمية بما يناسب فهم وتحقيق احتياجات وتوقعات الإدارة العليا",
			"توفير نتائج الأداء للوحدة التنظيمية بحيث يكون هناك رسوم بيانية توضح اتجاهات الأداء لمدة 3 سنوات (نتائج 4 سنوات) لإظهار استدامة الممارسات المتميزة",
			"فهم الأسباب وراء الاتجاهات والنتائج واستعراض نتائج الوحدة والأثر على نتائج الوحدات التنظيمية الأخرى ونتائج أعمال الشارقة لإدارة الأصول",
			"إظهار مستوى الاعتمادية لنتائج الأداء للوحدة التنظيمية لضمان الاستدامة المستقبلية للنتائج بالاستفادة من المسببات",
			"إظهار مقارنة لنتائج الأعمال الرئيسية للوحدة التنظيمية ومقارنتها مع الإدارات المماثلة والوحدات التنظيمية المماثلة في الشارقة لإدارة الأصول واستخدام هذه البيانات/المعلومات متى أمكن لتحديد أهداف الوحدة التنظيمية",
		},
		EvidenceEn: []string{
			"Achieving extraordinary performance results ensuring business sustainability for the organizational unit and meeting stakeholder expectations",
			"Developing and achieving a set of financial and non-financial results to measure precise implementation of organizational unit plans supporting business strategies, operations, and daily work",
			"Setting and level of achieving clear organizational unit objectives to measure key performance results based on senior management expectations",
			"Classifying and categorizing organizational unit results appropriately to understand and meet senior management needs and expectations",
			"Providing organizational unit performance results with charts showing 3-year performance trends (4 years of results) to demonstrate sustainability of distinguished practices",
			"Understanding reasons behind trends and results, reviewing unit results and impact on other organizational units' results and SAM business results",
			"Demonstrating the reliability level of organizational unit performance results to ensure future sustainability of results by leveraging causes",
			"Demonstrating comparison of key business results of the organizational unit with similar departments and organizational units in SAM and using this data/information when possible to set unit objectives",
		},
	},
}

var projectCriteria = []Criterion{
	{
		ID:    "proj-design",
		Title: Text{Ar: "تصميم وتطوير المشروع / المبادرة", En: "Project / Initiative Design & Development"},
		Description: Text{
			Ar: "يقيّم مرحلة تصميم وتطوير المشروع/المبادرة من حيث المفهوم والأهداف والتخطيط والمواءمة الاستراتيجية.",
			En: "Evaluates the design and development phase of the project/initiative in terms of concept, objectives, planning, and strategic alignment.",
		},
		Points: "20",
		EvidenceAr: []string{
			"المشروع: ميثاق المشروع مع الأهداف. المبادرة: مقترح المبادرة / موجز المبادرة مع الأهداف",
			"وثيقة مواءمة استراتيجية. مذكرة موافقة من القيادة",
			"وثيقة قائمة أصحاب المصلحة. تقرير موجز لتقييم الابتكار",
			"تقرير دراسة الجدوى. جدول تحليل البدائل مع تبرير القرار",
			"وثيقة خطة الموارد. مذكرة تعيين الموظفين والموافقة على الميزانية",
			"خطة تخصيص الموارد. تقرير إنجاز المهام",
			"جدول بيانات أو لوحة معلومات لتتبع التقدم. تقارير أداء دورية (أسبوعية / شهرية)",
		},
		EvidenceEn: []string{
			"Project: Project Charter with objectives. Initiative: Initiative Proposal / Initiative Brief with objectives.",
			"Strategic alignment mapping document. Approval memo from leadership.",
			"Stakeholder list document. Brief innovation assessment report.",
			"Feasibility study report. Alternatives analysis table with decision justification.",
			"Resource plan document. Staff assignment memo and budget approval.",
			"Resource allocation plan. Task completion report.",
			"Progress tracking spreadsheet or dashboard. Periodic (weekly / monthly) performance reports.",
		},
		ExamplesAr: []string{
			"تقديم نظام رقمي لتقليل الأخطاء اليدوية خلال إطار زمني محدد. تنفيذ حملة توعية للموظفين لزيادة المشاركة في أنشطة الاستدامة بنسب محددة خلال إطار زمني معين",
			"النظام الرقمي يحسن الكفاءة التشغيلية والشفافية. حملة التوعية تدعم أهداف الاستدامة والثقافة المؤسسية",
			"النظام الرقمي يستخدم التقارير الآلية بدلاً من التتبع اليدوي؛ أصحاب المصلحة الرئيسيون: الموظفون وتكنولوجيا المعلومات والإدارة. حملة التوعية تستخدم أدوات الاتصال الرقمي؛ أصحاب المصلحة: جميع الموظفين",
			"دراسة الجدوى تؤكد فعالية تكلفة النظام الرقمي؛ مقارنة الحلول الجاهزة مع التطوير الداخلي. مراجعة مستويات مشاركة الموظفين الحالية؛ مقارنة الحملة الشخصية مع الرقمية للوصول الأوسع",
			"تعيين الموظفين وتخصيص الميزانية والحصول على تراخيص البرمجيات اللازمة للنظام الرقمي. تعيين المنسقين واستخدام قنوات الاتصال الداخلية وتخصيص الميزانية لجلسات التوعية",
			"استخدام الموظفين والأدوات الرقمية المتاحة لإنجاز المهام في الوقت المحدد دون تكاليف إضافية. توزيع المسؤوليات بوضوح لتجنب ازدواجية الجهد",
			"تتبع أسبوعي لإنجاز المهام لمشروع النظام الرقمي. تحديث شهري للمشاركة في مبادرات التوعية أو التحسين",
		},
		ExamplesEn: []string{
			"Introduce a digital system to reduce manual errors within a certain time. Run a staff awareness campaign to increase participation in sustainability activities with specific percentages within certain timeframe.",
			"Digital system improves operational efficiency and transparency. Awareness campaign supports organizational sustainability and culture goals.",
			"Digital system uses automated reporting instead of manual tracking; key stakeholders: staff, IT, management. Awareness campaign uses digital communication tools; key stakeholders: all employees.",
			"Feasibility study confirms cost-effectiveness of digital system; compare off-the-shelf vs internal development. Review current staff engagement levels; compare in-person vs digital campaign for wider reach.",
			"Assign staff, allocate budget, and obtain necessary software licenses for a digital system. Assign coordinators, use internal communication channels, and allocate budget for awareness sessions.",
			"Use available staff and digital tools to complete tasks on time without extra costs. Assign responsibilities clearly to avoid duplication of effort.",
			"Weekly tracking of task completion for a digital system project. Monthly update of participation in awareness or improvement initiatives.",
		},
	},
	{
		ID:    "proj-exec",
		Title: Text{Ar: "تنفيذ المشروع / المبادرة", En: "Project / Initiative Execution"},
		Description: Text{
			Ar: "يقيّم مرحلة تنفيذ المشروع/المبادرة من حيث الكفاءة والمتابعة والتحكم المالي وإدارة التغيير.",
			En: "Evaluates the execution phase of the project/initiative in terms of efficiency, monitoring, financial control, and change management.",
		},
		Points: "30",
		EvidenceAr: []string{
			"ورقة تتبع الميزانية. تقرير مقارنة المصروفات (المخطط مقابل الفعلي)",
			"توثيق الأساليب المبتكرة المستخدمة. مقاييس تُظهر تحسن الكفاءة أو المشاركة",
			"مخططات جانت أو جداول تتبع المهام. سجل المخاطر أو سجل المشكلات",
			"سجلات حضور التدريب. رسائل الاتصال الداخلي أو الإشعارات",
			"سجل التغييرات أو تقرير تتبع المشكلات. الجدول المحدث الذي يُظهر التعديلات",
			"محاضر أو ملاحظات الاجتماعات. رسائل التقدير أو المذكرات الداخلية",
		},
		EvidenceEn: []string{
			"Budget tracking sheet. Expense comparison report (planned vs actual).",
			"Documentation of innovative approaches used. Metrics showing improved efficiency or engagement.",
			"Gantt charts or task tracking sheets. Risk register or issue log.",
			"Training attendance sheets. Internal communication emails or notifications.",
			"Change log or issue tracking report. Updated schedule showing adjustments.",
			"Meetings minutes or notes. Internal recognition emails or memos.",
		},
		ExamplesAr: []string{
			"مقارنة الميزانية المخططة مع التكاليف الفعلية لأنشطة المشروع/المبادرة. تعديل تخصيص الموارد إذا تجاوزت التكاليف الخطة",
			"استخدام منصات رقمية مشتركة للتعاون بدلاً من الاستعانة بمستشارين خارجيين. تحويل المشاركة في المبادرات إلى لعبة لزيادة التفاعل دون تكاليف إضافية",
			"استخدام مخططات جانت وقوائم المراجعة وسجلات المخاطر لتتبع تقدم المشروع/المبادرة. تطبيق لوحات المعلومات لتصوير مقاييس المشروع الرئيسية",
			"إجراء جلسات تدريب قصيرة للموظفين على الأنظمة أو العمليات الجديدة. إرسال تحديثات في الوقت المناسب حول التغييرات في نطاق أو إجراءات المشروع/المبادرة",
			"تعديل الجدول الزمني في حالة تأخير تسليم البرمجيات. إعادة تخصيص المهام أو الموارد إذا واجهت الخطط الأولية تحديات",
			"عقد اجتماعات فريق أسبوعية قصيرة للاحتفال بالإنجازات وحل المشكلات. تقدير مساهمات أعضاء الفريق المشاركين في المبادرات",
		},
		ExamplesEn: []string{
			"Compare planned budget vs actual costs for project / initiative activities. Adjust resource allocation if costs exceed plan.",
			"Use shared digital platforms to collaborate instead of hiring external consultants. Gamify participation in initiatives to increase engagement without extra costs.",
			"Use Gantt charts, checklists, and risk registers to track project / initiative progress. Apply dashboards to visualize key project metrics.",
			"Conduct short training sessions for staff on new systems or processes. Send timely updates on changes in project/initiative scope or procedures.",
			"Adjust timeline if software delivery is delayed. Reallocate tasks or resources if initial plans face challenges.",
			"Hold short weekly team meetings to celebrate achievements and resolve issues. Recognize contributions of team members participating in initiatives.",
		},
	},
	{
		ID:    "proj-results",
		Title: Text{Ar: "نتائج وأثر المشروع / المبادرة", En: "Project / Initiative Results & Impact"},
		Description: Text{
			Ar: "يقيّم نتائج المشروع/المبادرة من حيث تحقيق الأهداف والعائد على الاستثمار والأثر المستدام.",
			En: "Evaluates the project/initiative results in terms of achieving objectives, return on investment, and sustainable impact.",
		},
		Points: "50",
		EvidenceAr: []string{
			"تقرير مؤشرات الأداء بعد المشروع. لوحة معلومات تُظهر النتائج الفعلية مقابل المستهدفات",
			"نماذج أو استبيانات تغذية راجعة من أصحاب المصلحة. تقرير تقييم الأثر",
			"آلية تتبع الاستدامة. خطة مراقبة طويلة الأجل",
			"تقرير تقييم ما بعد المشروع/المبادرة. جدول مقارنة: النتائج المخططة مقابل الفعلية",
			"وثيقة الدروس المستفادة. سجل إجراءات التحسين المستمر",
			"منصة مشاركة الدروس المستفادة. نشرة داخلية أو عرض تقديمي أو وثيقة مشاركة المعرفة",
		},
		EvidenceEn: []string{
			"Post-project KPI report. Dashboard showing actual results vs targets.",
			"Stakeholder feedback forms or surveys. Impact assessment report.",
			"Sustainability tracking mechanism. Long-term monitoring plan.",
			"Post-project / initiative evaluation report. Comparison table: planned vs actual outcomes.",
			"Lessons learned document. Continuous improvement action log.",
			"Lessons learned sharing platform. Internal newsletter, presentation, or knowledge-sharing document.",
		},
		ExamplesAr: []string{
			"النظام الرقمي يقلل الأخطاء اليدوية بنسب محددة خلال إطار زمني معين. حملة التوعية تزيد المشاركة بنسب محددة خلال إطار زمني معين",
			"يوفر الموظفون الوقت بفضل التقارير الآلية. يُظهر الموظفون مشاركة ورضا أعلى مع المبادرات",
			"يستمر سير العمل بدون ورق في تقليل استخدام الورق. يصبح برنامج التوعية جزءاً من أنشطة مشاركة الموظفين المستمرة",
			"تقرير المشروع/المبادرة يُظهر إنجاز المراحل واستخدام الميزانية مقارنة بالخطة الأولية. تقرير المبادرة يُظهر نسبة تحقيق الأهداف مقابل المستهدفات",
			"تحديد الدروس المستفادة من تأخيرات أو نجاحات المشروع/المبادرة. تطبيق أفضل الممارسات من المشاريع/المبادرات السابقة على الجديدة",
			"تلخيص التحديات والحلول في تقرير بسيط. مشاركة قصص النجاح مع الفرق الأخرى لتكرار الممارسات الإيجابية",
		},
		ExamplesEn: []string{
			"Digital system reduces manual errors with specific percentages within certain timeframe. Awareness campaign increases participation with specific percentages within certain timeframe.",
			"Staff save time due to automated reporting. Employees show higher engagement and satisfaction with initiatives.",
			"Paperless workflow continues to reduce paper usage. Awareness program becomes part of ongoing staff engagement activities.",
			"Project / initiative report shows milestone completion and budget use compared to initial plan. Initiative report shows percentage achievement of objectives vs targets.",
			"Identify lessons learned from project / initiative delays or successes. Apply best practices from previous projects/initiatives to new ones.",
			"Summarize challenges and solutions in a simple report. Share success stories with other teams to replicate positive practices.",
		},
	},
}

var knowledgeCriteria = []Criterion{
	{
		ID:    "km-strategy",
		Title: Text{Ar: "استراتيجية إدارة المعرفة", En: "Knowledge Management Strategy"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى وجود استراتيجية واضحة لإدارة المعرفة وتوافقها مع الأهداف المؤسسية.",
			En: "Evaluates the existence of a clear knowledge management strategy aligned with organizational objectives.",
		},
		Points: "150",
		EvidenceAr: []string{
			"وجود استراتيجية موثقة لإدارة المعرفة",
			"تحديد الأهداف والنتائج المتوقعة ومؤشرات الأداء الرئيسية (KPIs) بوضوح",
			"مراقبة ومراجعة التقدم مقابل مؤشرات الأداء بشكل دوري",
		},
		EvidenceEn: []string{
			"A documented knowledge management strategy is in place.",
			"Objectives, expected outcomes, and key performance indicators (KPIs) are clearly defined.",
			"Progress against KPIs is regularly monitored and reviewed.",
		},
		ExamplesAr: []string{
			"استراتيجية موثقة لإدارة المعرفة",
			"مؤشرات أداء محددة مثل عدد جلسات مشاركة المعرفة ومعدلات استخدام النظام أو مستويات إكمال التدريب",
			"تقارير الأداء التي تُظهر مساهمة إدارة المعرفة في مؤشرات الأداء المؤسسية",
		},
		ExamplesEn: []string{
			"A documented knowledge management strategy.",
			"Defined KPIs such as number of knowledge-sharing sessions, system usage rates, or training completion levels.",
			"Performance reports showing contribution of KM to organizational KPIs.",
		},
	},
	{
		ID:    "km-culture",
		Title: Text{Ar: "ثقافة مشاركة المعرفة", En: "Knowledge Sharing Culture"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى تبني ثقافة مشاركة المعرفة والتعلم المستمر داخل المؤسسة.",
			En: "Evaluates the adoption of a knowledge sharing and continuous learning culture within the organization.",
		},
		Points: "100",
		EvidenceAr: []string{
			"اجتماعات دورية للفرق متعددة الوظائف لمشاركة أفضل الممارسات والدروس المستفادة",
			"استخدام أدوات التعاون (مثل المحركات المشتركة وقواعد المعرفة الداخلية وقنوات Teams/Slack) أدى إلى زيادة إمكانية الوصول إلى المعلومات وتقليل تكرار العمل",
			"أظهرت نتائج استبيانات مشاركة الموظفين تحسناً في درجات التواصل والعمل الجماعي",
			"زيادة المشاركة في برامج التدريب وورش العمل وأنشطة مشاركة المعرفة",
			"تحسن نتائج الأداء المرتبطة بالتعلم المشترك وتبني أفضل الممارسات",
		},
		EvidenceEn: []string{
			"Cross-functional teams meet regularly to share best practices and lessons learned.",
			"Use of collaboration tools (e.g., shared drives, internal knowledge bases, Teams/Slack channels) has increased information accessibility and reduced duplicated work.",
			"Employee engagement or survey results show improved communication and teamwork scores.",
			"Increased participation in training programs, workshops, and knowledge-sharing activities.",
			"Improved performance outcomes linked to shared learning and best-practice adoption.",
		},
		ExamplesAr: []string{
			"جلسات دورية لمشاركة المعرفة حيث يقدم الموظفون مشاريع ناجحة أو مهارات جديدة لزملائهم",
			"المحركات المشتركة وقواعد المعرفة الداخلية وقنوات Teams/Slack",
			"نتائج استبيانات مشاركة الموظفين",
			"برامج التوجيه أو الزمالة التي تربط الموظفين ذوي الخبرة بالموظفين الجدد لنقل المعرفة المؤسسية",
			"تقديم حوافز مثل الشهادات وفرص التطوير المهني أو التقدير العلني لمساهمات التعلم",
		},
		ExamplesEn: []string{
			"Periodic knowledge-sharing sessions where staff present successful projects or new skills to colleagues.",
			"Shared drives, internal knowledge bases, Teams / Slack channels.",
			"Employee engagement or survey results.",
			"Mentoring or buddy programs that pair experienced staff with newer employees to transfer institutional knowledge.",
			"Providing incentives such as certificates, professional development opportunities, or public acknowledgment for learning contributions.",
		},
	},
	{
		ID:    "km-tech",
		Title: Text{Ar: "التقنيات والأنظمة المستخدمة", En: "Technologies & Systems Used"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم الأنظمة والتقنيات المستخدمة لالتقاط وتخزين ومشاركة واسترجاع المعرفة.",
			En: "Evaluates the systems and technologies used to capture, store, share, and retrieve knowledge.",
		},
		Points: "100",
		EvidenceAr: []string{
			"منصات رقمية مركزية مع سياسات وصول واضحة",
			"سجلات الاستخدام المنتظم للنظام بما في ذلك تسجيلات الدخول والتحميلات والمساهمات",
			"تغذية راجعة من الموظفين تُظهر سهولة الوصول وسهولة استخدام منصات المعرفة",
		},
		EvidenceEn: []string{
			"Centralized digital platforms with clear access policies.",
			"Records of regular system usage, including logins, downloads, and contributions.",
			"Feedback from employees showing ease of access and usability of knowledge platforms.",
		},
		ExamplesAr: []string{
			"مواقع Teams أو SharePoint للتعاون بين الأقسام في المشاريع",
			"مكتبات رقمية تحتوي على مستندات وأدلة وقوالب قابلة للبحث ومتاحة لجميع الموظفين",
			"جلسات مشاركة المعرفة المدعومة بمنصات إلكترونية تتيح المشاركة عن بُعد",
		},
		ExamplesEn: []string{
			"Teams or SharePoint sites for cross-department collaboration on projects.",
			"Digital libraries with searchable documents, guides, and templates accessible to all staff.",
			"Knowledge-sharing sessions supported by online platforms, enabling remote participation.",
		},
	},
	{
		ID:    "km-innov",
		Title: Text{Ar: "الابتكار والتطوير المستمر", En: "Innovation & Continuous Development"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى استخدام المعرفة لدعم الابتكار والتطوير المستمر.",
			En: "Evaluates the extent to which knowledge is used to support innovation and continuous development.",
		},
		Points: "120",
		EvidenceAr: []string{
			"تطبيق أنظمة لالتقاط الدروس المستفادة وأفضل الممارسات واقتراحات الموظفين",
			"تحسينات موثقة في العمليات أو الخدمات الناتجة عن مشاركة المعرفة",
			"مشاركة الموظفين في برامج الابتكار أو المبادرات المدفوعة بالمعرفة",
			"مراجعات وتحديثات دورية لسياسات وسير عمل ومنصات إدارة المعرفة",
			"برامج تدريب الموظفين الهادفة إلى تحسين مهارات إدارة المعرفة",
		},
		EvidenceEn: []string{
			"Implementation of systems to capture lessons learned, best practices, and staff suggestions.",
			"Documented improvements in processes or services resulting from knowledge sharing.",
			"Employee participation in innovation programs or knowledge-driven initiatives.",
			"Regular reviews and updates of knowledge management policies, workflows, and platforms.",
			"Staff training programs aimed at improving knowledge management skills.",
		},
		ExamplesAr: []string{
			"تقديم بوابة اقتراحات حيث يقدم الموظفون أفكاراً تؤدي إلى تحسينات في العمليات",
			"استخدام المعرفة من المشاريع السابقة لتبسيط سير العمل أو تقليل الأخطاء",
			"تنظيم ورش عمل ابتكارية حيث تستفيد الفرق من البيانات والخبرات الداخلية لتطوير حلول جديدة",
			"تحديث المكتبة الرقمية بقوالب وإرشادات جديدة بناءً على تغذية راجعة المستخدمين",
			"تطبيق سير عمل آلي لالتقاط المعرفة ونشرها",
			"إجراء جلسات تدريب دورية لمساعدة الموظفين على استخدام أدوات إدارة المعرفة بشكل أفضل",
		},
		ExamplesEn: []string{
			"Introducing a suggestion portal where staff submit ideas that lead to process improvements.",
			"Using knowledge from previous projects to streamline workflows or reduce errors.",
			"Organizing innovation workshops where teams leverage internal data and experiences to develop new solutions.",
			"Updating the digital library with new templates and guidelines based on user feedback.",
			"Implementing automated workflows for knowledge capture and dissemination.",
			"Conducting periodic training sessions to help staff better use KM tools and resources.",
		},
	},
	{
		ID:    "km-community",
		Title: Text{Ar: "المشاركة المجتمعية والشراكات", En: "Community Engagement & Partnerships"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى مشاركة المعرفة مع المجتمع والشركاء الخارجيين.",
			En: "Evaluates the extent of knowledge sharing with the community and external partners.",
		},
		Points: "80",
		EvidenceAr: []string{
			"سجلات الشراكات والتعاون أو مذكرات التفاهم مع المنظمات الخارجية",
			"تقارير المشاريع المشتركة أو ورش العمل أو برامج التدريب مع الشركاء الخارجيين",
			"تغذية راجعة من أصحاب المصلحة تُظهر فعالية التبادل المعرفي والتعاون",
			"توثيق الموارد المشتركة والمنشورات أو مخرجات البحث",
		},
		EvidenceEn: []string{
			"Records of partnerships, collaborations, or MOUs with external organizations.",
			"Reports on joint projects, workshops, or training programs with external partners.",
			"Feedback from stakeholders showing effective knowledge exchange and collaboration.",
			"Documentation of shared resources, publications, or research outputs.",
		},
		ExamplesAr: []string{
			"تنظيم ورش عمل مشتركة أو ندوات عبر الإنترنت أو مؤتمرات مع منظمات أو مجموعات مجتمعية أخرى",
			"التعاون مع شركاء الصناعة لتطوير أفضل الممارسات أو تجريب مبادرات جديدة",
			"مشاركة الأبحاث والإرشادات أو مجموعات الأدوات مع أصحاب المصلحة الخارجيين لتأثير أوسع",
			"إنشاء بوابات أو منتديات إلكترونية حيث يمكن للشركاء وأعضاء المجتمع الوصول إلى المعرفة والمساهمة فيها",
		},
		ExamplesEn: []string{
			"Organizing joint workshops, webinars, or conferences with other organizations or community groups.",
			"Collaborating with industry partners to develop best practices or pilot new initiatives.",
			"Sharing research, guidelines, or toolkits with external stakeholders for broader impact.",
			"Establishing online portals or forums where partners and community members can access and contribute knowledge.",
		},
	},
	{
		ID:    "km-transparency",
		Title: Text{Ar: "الشفافية والتواصل", En: "Transparency & Communication"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى شفافية وفعالية قنوات التواصل المعرفي داخل المؤسسة.",
			En: "Evaluates the transparency and effectiveness of knowledge communication channels within the organization.",
		},
		Points: "50",
		EvidenceAr: []string{
			"سجلات تُظهر تحديثات دورية للسياسات والمشاريع أو الأداء المؤسسي",
			"توفر منصات مشاركة المعرفة أو لوحات المعلومات المتاحة لجميع الموظفين",
			"تغذية راجعة من الموظفين تُشير إلى فهم وثقة في المعلومات المشتركة",
			"سجلات اجتماعات الفرق وتحديثات المشاريع والاتصالات بين الأقسام",
			"إحصائيات الاستخدام من منصات التعاون (مثل Teams وSharePoint)",
			"استبيانات الموظفين التي تُظهر الرضا عن قنوات الاتصال الداخلي",
		},
		EvidenceEn: []string{
			"Records showing regular updates on policies, projects, or organizational performance.",
			"Availability of shared knowledge platforms or dashboards accessible to all staff.",
			"Feedback from employees indicating understanding and trust in shared information.",
			"Records of team meetings, project updates, and inter-departmental communications.",
			"Usage statistics from collaboration platforms (e.g., Teams and SharePoint).",
			"Employee surveys showing satisfaction with internal communication channels.",
		},
		ExamplesAr: []string{
			"نشر تقارير أو نشرات دورية مع تحديثات حول المشاريع والقرارات والنتائج",
			"الحفاظ على مستودع معرفي مركزي أو شبكة داخلية مع وصول واضح للسياسات والإجراءات وأفضل الممارسات",
			"اجتماعات فريق مفتوحة يتم فيها إبلاغ جميع الموظفين المعنيين بالتقدم والتحديات والقرارات",
			"اجتماعات فريق دورية لمناقشة التقدم ومشاركة الدروس المستفادة وتنسيق المهام",
			"استخدام أدوات التعاون لمشاركة المستندات وتتبع حالة المشروع وتسهيل المناقشات الفورية",
			"تنظيم ورش عمل أو إحاطات لضمان اطلاع جميع الموظفين على القرارات الرئيسية والأولويات المؤسسية",
		},
		ExamplesEn: []string{
			"Publishing regular reports or newsletters with updates on projects, decisions, and outcomes.",
			"Maintaining a central knowledge repository or intranet with clear access to policies, procedures, and best practices.",
			"Open team meetings where progress, challenges, and decisions are communicated to all relevant staff.",
			"Periodic team meetings to discuss progress, share lessons learned, and coordinate tasks.",
			"Using collaboration tools to share documents, track project status, and facilitate real-time discussions.",
			"Organizing workshops or briefings to ensure all staff are informed about key decisions and organizational priorities.",
		},
	},
	{
		ID:    "km-app",
		Title: Text{Ar: "التطبيق العملي والنماذج الرائدة", En: "Practical Application & Leading Models"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم النماذج والتطبيقات العملية الناجحة لإدارة المعرفة.",
			En: "Evaluates successful practical models and applications of knowledge management.",
		},
		Points: "120",
		EvidenceAr: []string{
			"توثيق مشاريع إدارة المعرفة بأهداف ونتائج محددة",
			"سجلات مشاركة الموظفين في مبادرات إدارة المعرفة والفوائد المؤسسية الناتجة",
			"سجلات توثيق أفضل الممارسات ونشرها داخلياً",
			"تغذية راجعة من الموظفين تُشير إلى استخدام الممارسات المشتركة لتحسين عمليات العمل",
		},
		EvidenceEn: []string{
			"Documentation of knowledge management projects with defined objectives and outcomes.",
			"Records of staff participation in KM initiatives and resulting organizational benefits.",
			"Records of best-practice documentation and internal dissemination.",
			"Feedback from staff indicating use of shared practices to improve work processes.",
		},
		ExamplesAr: []string{
			"تطبيق جلسات الدروس المستفادة بعد المشاريع لتحسين الأداء المستقبلي",
			"إجراء ورش عمل أو جلسات تعلم أثناء الغداء لعرض المشاريع الناجحة",
			"نشر دراسات الحالة أو الأدلة على البوابات الداخلية لمرجع الموظفين",
			"برامج التوجيه حيث يشارك الموظفون الأساليب الفعالة والدروس المستفادة مع الزملاء",
		},
		ExamplesEn: []string{
			"Implementing lessons-learned sessions after projects to improve future performance.",
			"Conducting workshops or lunch-and-learn sessions to showcase successful projects.",
			"Publishing case studies or guides on internal portals for staff reference.",
			"Mentoring programs where employees share effective methods and lessons learned with colleagues.",
		},
	},
	{
		ID:    "km-measure",
		Title: Text{Ar: "القياس والتقييم", En: "Measurement & Evaluation"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم آليات قياس وتقييم فعالية إدارة المعرفة.",
			En: "Evaluates the mechanisms for measuring and evaluating KM effectiveness.",
		},
		Points: "80",
		EvidenceAr: []string{
			"تقارير تُظهر مقاييس استخدام أنظمة إدارة المعرفة مثل تسجيلات الدخول والتحميلات والمساهمات",
			"استبيانات أو تغذية راجعة من الموظفين لقياس الرضا عن أدوات وعمليات إدارة المعرفة",
			"مؤشرات أداء مرتبطة بمبادرات إدارة المعرفة مثل تقليل الأخطاء أو إنجاز المشاريع بشكل أسرع",
			"تحسينات موثقة في كفاءة العمليات أو جودة الخدمة أو اتخاذ القرارات",
			"تقارير توفير التكاليف أو تقليل تكرار العمل أو حل المشكلات بشكل أسرع",
			"دراسات حالة تُبرز الفوائد المحققة من مبادرات إدارة المعرفة",
		},
		EvidenceEn: []string{
			"Reports showing usage metrics of KM systems, such as logins, downloads, and contributions.",
			"Surveys or feedback from staff measuring satisfaction with KM tools and processes.",
			"Performance indicators linked to KM initiatives, such as reduced errors or faster project completion.",
			"Documented improvements in process efficiency, service quality, or decision-making.",
			"Reports of cost savings, reduced duplication of work, or faster problem resolution.",
			"Case studies highlighting benefits realized from KM initiatives.",
		},
		ExamplesAr: []string{
			"إجراء مراجعات ربع سنوية لمستودعات المعرفة لتتبع الاستخدام والملاءمة",
			"استخدام لوحات المعلومات لمراقبة مشاركة الموظفين مع منصات مشاركة المعرفة",
			"تقييم نجاح جلسات التدريب من خلال تتبع الحضور وتحسينات الأداء بعد التدريب",
			"تطبيق برنامج الدروس المستفادة الذي يمنع تكرار الأخطاء ويحسن نتائج المشاريع",
			"مشاركة أفضل الممارسات التي تقلل وقت معالجة المهام الروتينية",
			"إظهار تحسن رضا العملاء بسبب الوصول الأسرع إلى المعرفة المؤسسية",
		},
		ExamplesEn: []string{
			"Conducting quarterly reviews of knowledge repositories to track usage and relevance.",
			"Using dashboards to monitor staff engagement with knowledge-sharing platforms.",
			"Evaluating the success of training sessions by tracking attendance and post-training performance improvements.",
			"Implementing a lessons-learned program that prevents repeated mistakes and improves project outcomes.",
			"Sharing best practices that reduce processing time for routine tasks.",
			"Demonstrating improved customer satisfaction due to faster access to organizational knowledge.",
		},
	},
	{
		ID:    "km-learn",
		Title: Text{Ar: "التعلم المستمر وبناء القدرات", En: "Continuous Learning & Capacity Building"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم برامج التعلم المستمر وبناء القدرات المرتبطة بإدارة المعرفة.",
			En: "Evaluates continuous learning and capacity building programs related to knowledge management.",
		},
		Points: "100",
		EvidenceAr: []string{
			"تغذية راجعة من الموظفين حول تنمية المهارات وفعالية التدريب",
			"توثيق الدروس المستفادة من المشاريع أو المبادرات المكتملة",
			"سجلات تُظهر تحسينات في العمليات أو النتائج بناءً على الخبرة السابقة",
		},
		EvidenceEn: []string{
			"Feedback from employees on skill development and training effectiveness.",
			"Documentation of lessons-learned from completed projects or initiatives.",
			"Records showing improvements in processes or outcomes based on prior experience.",
		},
		ExamplesAr: []string{
			"تقديم دورات تطوير مهني دورية أو شهادات ذات صلة بالأدوار الوظيفية",
			"برامج التوجيه والتدريب التي تربط الموظفين ذوي الخبرة بالموظفين الأحدث",
			"استضافة ورش عمل أو ندوات عبر الإنترنت أو جلسات تعلم أثناء الغداء حول الأدوات والعمليات وأفضل الممارسات الجديدة",
			"إجراء مراجعات ما بعد المشروع لالتقاط النجاحات ومجالات التحسين",
			"استخدام التغذية الراجعة من الموظفين وأصحاب المصلحة لتحسين سير العمل وتعزيز تقديم الخدمات",
		},
		ExamplesEn: []string{
			"Offering regular professional development courses or certifications relevant to roles.",
			"Mentoring and coaching programs pairing experienced staff with newer employees.",
			"Hosting workshops, webinars, or \"lunch-and-learn\" sessions on new tools, processes, or best practices.",
			"Conducting post-project reviews to capture successes and areas for improvement.",
			"Using feedback from staff and stakeholders to refine workflows and enhance service delivery.",
		},
	},
	{
		ID:    "km-sustain",
		Title: Text{Ar: "الاستدامة", En: "Sustainability"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم مدى استدامة ممارسات إدارة المعرفة على المدى الطويل.",
			En: "Evaluates the long-term sustainability of knowledge management practices.",
		},
		Points: "100",
		EvidenceAr: []string{
			"تقارير التدقيق أو المراجعات الداخلية التي تؤكد تطبيق ممارسات المعرفة في العمل اليومي",
			"سجلات مبادرات أو برامج إدارة معرفة جديدة أُنشئت بمرور الوقت",
			"مقاييس تُظهر زيادة الاستخدام والتبني أو المساهمة في منصات المعرفة",
			"تقارير تُظهر تحسينات في الكفاءة والابتكار أو جودة الخدمة مرتبطة بنمو إدارة المعرفة",
		},
		EvidenceEn: []string{
			"Audit reports or internal reviews confirming knowledge practices are applied in daily work.",
			"Records of new knowledge management initiatives or programs introduced over time.",
			"Metrics showing increased usage, adoption, or contribution to knowledge platforms.",
			"Reports demonstrating improvements in efficiency, innovation, or service quality linked to KM growth.",
		},
		ExamplesAr: []string{
			"إنشاء سير عمل خطوة بخطوة وقوائم مراجعة للمهام الروتينية بناءً على أفضل الممارسات",
			"توثيق الدروس المستفادة من المشاريع وجعلها جزءاً من الإجراءات المعتمدة",
			"توسيع منصات إدارة المعرفة لتشمل أقساماً أو فرقاً جديدة مما يزيد من النطاق المؤسسي",
			"تطبيق دورات تحسين مستمر لعمليات المعرفة بناءً على تغذية راجعة الموظفين",
			"تقديم أدوات أو تقنيات متقدمة (مثل البحث بالذكاء الاصطناعي ولوحات المعلومات) لتعزيز قدرات إدارة المعرفة",
		},
		ExamplesEn: []string{
			"Creating step-by-step workflows and checklists for routine tasks based on best practices.",
			"Documenting lessons learned from projects and making them part of standard procedures.",
			"Expanding KM platforms to include new departments or teams, increasing organizational reach.",
			"Implementing continuous improvement cycles for knowledge processes based on staff feedback.",
			"Introducing advanced tools or technologies (e.g., AI search, dashboards) to enhance KM capabilities.",
		},
	},
}

var greenCriteria = []Criterion{
	{
		ID:    "green-resources",
		Title: Text{Ar: "استدامة الموارد المؤسسية", En: "Organizational Resource Sustainability"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى استدامة استخدام الموارد المؤسسية بما في ذلك الطاقة والمياه والمواد.",
			En: "Evaluates the sustainability of organizational resource usage including energy, water, and materials.",
		},
		Points: "140",
		EvidenceAr: []string{
			"فواتير الخدمات وتقارير المراقبة التي تُظهر انخفاضًا في الاستهلاك بمرور الوقت",
			"سجلات تركيب المعدات الموفرة للطاقة (إضاءة LED، العدادات الذكية، أجهزة المياه منخفضة التدفق)",
			"حملات توعية الموظفين أو برامج تدريبية حول ترشيد استهلاك الطاقة والمياه",
			"سجلات انخفاض استخدام الورق والحبر والمواد الخام بمرور الوقت",
			"تقارير إعادة التدوير وإدارة النفايات التي تُظهر التخلص السليم وإعادة استخدام المواد",
			"توثيق تحسينات العمليات التي تقلل من استهلاك المواد",
		},
		EvidenceEn: []string{
			"Utility bills and monitoring reports showing reduced consumption over time.",
			"Installation records of energy-efficient equipment (LED lighting, smart meters, low-flow water devices).",
			"Employee awareness campaigns or training programs on energy and water conservation.",
			"Records of reduced paper, ink, and raw material usage over time.",
			"Recycling and waste management reports showing proper disposal and reuse of materials.",
			"Documentation of process improvements that reduce material consumption.",
		},
		ExamplesAr: []string{
			"تطبيق إضاءة بأجهزة استشعار الحركة وأنظمة تكييف موفرة للطاقة لتقليل استهلاك الكهرباء",
			"استخدام صنابير منخفضة التدفق وأجهزة توفير المياه لتقليل استهلاك المياه",
			"مراقبة منتظمة لاستهلاك الطاقة والمياه مع تقارير شهرية لتحديد فرص التوفير",
			"التحول إلى المستندات الرقمية والتوقيعات الإلكترونية لتقليل استخدام الورق والحبر",
			"إعادة تدوير المواد المتبقية وإعادة استخدام المستلزمات حيثما أمكن",
			"تبسيط عمليات الإنتاج لتقليل هدر المواد الخام",
		},
		ExamplesEn: []string{
			"Implementing motion-sensor lighting and energy-efficient HVAC systems to reduce electricity use.",
			"Using low-flow faucets and water-saving devices to cut water consumption.",
			"Regular monitoring of energy and water use with monthly reports to identify savings opportunities.",
			"Switching to digital documents and e-signatures to minimize paper and ink use.",
			"Recycling scrap materials and reusing supplies where possible.",
			"Streamlining production processes to reduce raw material waste.",
		},
	},
	{
		ID:    "green-waste",
		Title: Text{Ar: "إدارة النفايات وتقليل الأثر البيئي", En: "Waste Management & Environmental Impact Reduction"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم ممارسات إدارة النفايات والجهود المبذولة لتقليل الأثر البيئي.",
			En: "Evaluates waste management practices and efforts to reduce environmental impact.",
		},
		Points: "130",
		EvidenceAr: []string{
			"تقارير تدقيق النفايات في الأقسام التي تُظهر انخفاضًا في التخلص في مقالب النفايات",
			"سجلات برامج ومبادرات إعادة التدوير المطبقة في المكاتب والمرافق",
			"مؤشرات الأداء لتقليل النفايات ومعدلات إعادة الاستخدام",
			"سجلات المشتريات التي تُظهر شراء مواد قابلة للتحلل وغير سامة أو قابلة لإعادة التدوير",
			"السياسات أو الإرشادات التي تحدد استخدام المواد الصديقة للبيئة في العمليات",
			"تقارير تتبع انخفاض استخدام المواد الخطرة أو غير القابلة لإعادة التدوير",
		},
		EvidenceEn: []string{
			"Departmental waste audits and reports showing reduction in landfill disposal.",
			"Records of recycling programs and initiatives implemented across offices and facilities.",
			"Performance indicators for waste reduction and reuse rates.",
			"Procurement records showing purchases of biodegradable, non-toxic, or recyclable materials.",
			"Policies or guidelines specifying eco-friendly materials in operations.",
			"Reports tracking reduction in use of hazardous or non-recyclable materials.",
		},
		ExamplesAr: []string{
			"تقديم حاويات منفصلة للمواد القابلة لإعادة التدوير والسماد والنفايات العامة في جميع الأقسام",
			"تنظيم حملات لتشجيع الموظفين على إعادة استخدام المواد وتقليل التغليف",
			"الشراكة مع شركات إعادة التدوير للورق والبلاستيك والنفايات الإلكترونية",
			"التحول إلى مستلزمات التنظيف القابلة للتحلل والتغليف أو المستلزمات المكتبية",
			"استخدام أحبار ودهانات غير سامة في عمليات الطباعة والإنتاج",
			"دمج المواد المعاد تدويرها أو المستدامة في القرطاسية والأزياء الموحدة والمواد الترويجية",
		},
		ExamplesEn: []string{
			"Introducing separate bins for recyclables, compostables, and general waste in all departments.",
			"Running campaigns to encourage staff to reuse materials and reduce packaging.",
			"Partnering with recycling companies for paper, plastics, and electronic waste.",
			"Switching to biodegradable cleaning supplies, packaging, or office consumables.",
			"Using non-toxic inks and paints in printing and production processes.",
			"Incorporating recycled or sustainable materials in stationery, uniforms, and promotional items.",
		},
	},
	{
		ID:    "green-innov",
		Title: Text{Ar: "الابتكار البيئي", En: "Environmental Innovation"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم المبادرات والابتكارات البيئية المطبقة.",
			En: "Evaluates applied environmental initiatives and innovations.",
		},
		Points: "130",
		EvidenceAr: []string{
			"تقارير استهلاك الطاقة",
			"تدقيقات ISO 14001 البيئية التي تؤكد تقليل توليد النفايات",
			"دراسة حالة: إطلاق خط إنتاج جديد باستخدام مواد معاد تدويرها بنسبة 100%، مما أدى إلى انخفاض قابل للقياس في انبعاثات CO₂",
			"المواد المعاد تدويرها/الصديقة للبيئة: سجلات المشتريات، عينات التغليف، أو تقارير اختبار المواد الداخلية التي تؤكد قابلية إعادة التدوير",
			"تحسينات العمليات لتقليل النفايات: سجلات الإنتاج، تقارير تقليل النفايات",
		},
		EvidenceEn: []string{
			"Energy consumption reports.",
			"ISO 14001 environmental audits confirming reduced waste generation.",
			"Case study: Launch of a new product line using 100% recycled materials, resulting in measurable CO₂ reduction.",
			"Recycled/eco-friendly materials: Procurement records, packaging samples, or internal material test reports confirming recyclability.",
			"Process improvements to reduce waste: Production logs, waste reduction reports.",
		},
		ExamplesAr: []string{
			"تطبيق معدات تصنيع موفرة للطاقة لتقليل استهلاك الكهرباء وقد تشمل أنظمة الطاقة الشمسية",
			"اعتماد أنظمة إعادة تدوير المياه في خطوط الإنتاج",
			"استخدام تغليف قابل للتحلل أو إعادة التدوير للمنتجات",
			"تطوير منتجات موفرة للطاقة من خلال تحسين التصاميم الحالية لتقليل استهلاك الكهرباء أو الوقود",
			"استخدام مواد معاد تدويرها أو صديقة للبيئة في المنتجات أو التغليف",
			"تطبيق تحسينات على العمليات لتقليل هدر المواد في الإنتاج",
		},
		ExamplesEn: []string{
			"Implementing energy-efficient manufacturing equipment to reduce electricity consumption and this could be solar systems.",
			"Adopting water recycling systems in production lines.",
			"Using biodegradable or recyclable packaging for products.",
			"Developing energy-efficient products by improving existing designs to reduce electricity or fuel consumption.",
			"Using recycled or eco-friendly materials in products or packaging.",
			"Implementing process improvements to minimize material waste in production.",
		},
	},
	{
		ID:    "green-supply",
		Title: Text{Ar: "استدامة سلسلة التوريد", En: "Supply Chain Sustainability"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم مدى تطبيق معايير الاستدامة في سلسلة التوريد.",
			En: "Evaluates the application of sustainability standards in the supply chain.",
		},
		Points: "100",
		EvidenceAr: []string{
			"تقارير تقييم الموردين بما في ذلك درجات الاستدامة",
			"عقود المشتريات التي تتضمن متطلبات بيئية",
			"وثائق التدقيق الداخلي أو امتثال الموردين",
			"اتفاقيات شراكة موقعة أو مذكرات تفاهم (MoUs)",
			"تقارير تتبع انخفاض انبعاثات CO₂ أو توفير الموارد",
			"وثائق المشاريع المشتركة، دراسات الحالة، أو نتائج البرامج التجريبية",
		},
		EvidenceEn: []string{
			"Supplier evaluation reports including sustainability scores.",
			"Procurement contracts with environmental requirements.",
			"Internal audit or supplier compliance documentation.",
			"Signed partnership agreements or memoranda of understanding (MoUs).",
			"Reports tracking CO₂ reductions or resource savings.",
			"Joint project documentation, case studies, or pilot program results.",
		},
		ExamplesAr: []string{
			"تقارير تقييم الموردين بما في ذلك درجات الاستدامة",
			"عقود المشتريات التي تتضمن متطلبات بيئية",
			"وثائق التدقيق الداخلي أو امتثال الموردين",
			"اتفاقيات شراكة موقعة أو مذكرات تفاهم (MoUs)",
			"تقارير تتبع انخفاض انبعاثات CO₂ أو توفير الموارد",
			"وثائق المشاريع المشتركة، دراسات الحالة، أو نتائج البرامج التجريبية",
		},
		ExamplesEn: []string{
			"Supplier evaluation reports including sustainability scores.",
			"Procurement contracts with environmental requirements.",
			"Internal audit or supplier compliance documentation.",
			"Signed partnership agreements or memoranda of understanding (MoUs).",
			"Reports tracking CO₂ reductions or resource savings.",
			"Joint project documentation, case studies, or pilot program results.",
		},
	},
	{
		ID:    "green-community",
		Title: Text{Ar: "التوعية والمشاركة المجتمعية", En: "Awareness & Community Engagement"},
		Group: GroupEnablers,
		Description: Text{
			Ar: "يقيّم جهود التوعية البيئية والمشاركة المجتمعية.",
			En: "Evaluates environmental awareness efforts and community engagement.",
		},
		Points: "100",
		EvidenceAr: []string{
			"جداول ورش العمل وقوائم الحضور أو صور الجلسات",
			"نسخ من الملصقات والنشرات الإخبارية بالبريد الإلكتروني أو منشورات وسائل التواصل الاجتماعي",
			"تقارير الفعاليات والصور أو رسائل من المدارس/المنظمات المجتمعية تؤكد المشاركة",
			"صور الفعاليات وسجلات حضور المتطوعين أو التغطية الإعلامية",
			"اتفاقيات الشراكة وتقارير المشاريع أو جداول تتبع التقدم",
			"الوثائق الداخلية للمساهمات وتقارير المشاريع أو التغذية الراجعة من شركاء المجتمع",
		},
		EvidenceEn: []string{
			"Workshop schedules, attendance lists, or photos of sessions.",
			"Copies of posters, email newsletters, or social media posts.",
			"Event reports, photos, or letters from schools/community organizations confirming participation.",
			"Event photos, volunteer sign-in sheets, or media coverage.",
			"Partnership agreements, project reports, or progress tracking sheets.",
			"Internal documentation of contributions, project reports, or feedback from community partners.",
		},
		ExamplesAr: []string{
			"تنظيم ورش عمل داخلية حول ترشيد الطاقة وتقليل النفايات أو الممارسات المستدامة للموظفين",
			"إجراء حملات توعية باستخدام الملصقات والبريد الإلكتروني أو النشرات حول المسؤولية البيئية",
			"استضافة محادثات مجتمعية أو زيارات مدرسية لتثقيف المجتمع المحلي حول الاستدامة",
			"المشاركة في حملات زراعة الأشجار أو حملات التنظيف المحلية",
			"الشراكة مع المنظمات المجتمعية في برامج إعادة التدوير أو تقليل النفايات",
			"دعم مشروع مجتمعي لترشيد المياه أو الطاقة المتجددة أو التخضير الحضري",
		},
		ExamplesEn: []string{
			"Organize internal workshops on energy conservation, waste reduction, or sustainable practices for employees.",
			"Conduct awareness campaigns using posters, emails, or newsletters about environmental responsibility.",
			"Host community talks or school visits to educate the local community on sustainability.",
			"Participate in local tree planting or clean-up campaigns.",
			"Partner with community organizations on recycling or waste reduction programs.",
			"Support a community project for water conservation, renewable energy, or urban greening.",
		},
	},
	{
		ID:    "green-design",
		Title: Text{Ar: "نتائج وأثر تصميم الخدمات الخضراء", En: "Green Service Design Results & Impact"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم نتائج وأثر تصميم وتقديم الخدمات الخضراء.",
			En: "Evaluates the results and impact of designing and delivering green services.",
		},
		Points: "150",
		EvidenceAr: []string{
			"وثائق سير العمل الداخلية التي تُظهر عمليات الموافقة الرقمية أو إجراءات توفير الطاقة",
			"تقارير عن انخفاض السفر أو استهلاك الوقود وجداول الاجتماعات أو سجلات تحسين اللوجستيات",
			"سجلات تتبع النفايات وتقارير التدقيق الداخلي أو سجلات المخزون التي تُظهر تقليل المواد ذات الاستخدام الواحد",
			"فواتير المشتريات التي تُظهر شراء ورق معاد تدويره أو مواد أخرى",
			"عينات التغليف أو سجلات المشتريات الداخلية التي تؤكد قابلية إعادة تدوير المواد",
			"تقارير المخزون أو المشتريات التي تُظهر استبدال البلاستيك ذي الاستخدام الواحد بعناصر معاد تدويرها/قابلة لإعادة الاستخدام",
		},
		EvidenceEn: []string{
			"Internal workflow documentation showing digital approval processes or energy-saving measures.",
			"Reports on reduced travel or fuel consumption, meeting schedules, or logistics optimization records.",
			"Waste tracking logs, internal audit reports, or inventory records showing reduced single-use materials.",
			"Procurement invoices showing purchase of recycled paper or materials.",
			"Packaging samples or internal procurement records confirming recyclable materials.",
			"Inventory or procurement reports showing the replacement of single-use plastics with recycled / reusable items.",
		},
		ExamplesAr: []string{
			"إعادة تصميم سير العمل الداخلي لتقليل استهلاك الطاقة، مثل استخدام الموافقات الرقمية بدلاً من العمليات الورقية",
			"تطبيق تقديم خدمات صديقة للبيئة مثل تقليل السفر من خلال الاجتماعات الافتراضية أو تحسين مسارات اللوجستيات",
			"تعديل العمليات التشغيلية لتقليل النفايات مثل إعادة استخدام المواد أو تقليل العناصر ذات الاستخدام الواحد في تقديم الخدمات",
			"دمج الورق المعاد تدويره في العمليات المكتبية أو مواد الخدمة",
			"استخدام تغليف قابل لإعادة التدوير للمنتجات أو مواد تقديم الخدمة",
			"استبدال مكونات البلاستيك ذات الاستخدام الواحد ببدائل معاد تدويرها أو قابلة لإعادة الاستخدام في الخدمات أو العمليات",
		},
		ExamplesEn: []string{
			"Redesign internal workflows to reduce energy consumption, e.g., using digital approvals instead of paper-based processes.",
			"Implement eco-friendly service delivery, such as reducing travel through virtual meetings or optimizing logistics routes.",
			"Adjust operational processes to minimize waste, e.g., reusing materials or reducing single-use items in service delivery.",
			"Incorporate recycled paper in office operations or service materials.",
			"Use recyclable packaging for products or service delivery materials.",
			"Replace single-use plastic components with recycled or reusable alternatives in services or processes.",
		},
	},
	{
		ID:    "green-performance",
		Title: Text{Ar: "الأداء البيئي الفعلي", En: "Actual Environmental Performance"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم الأداء البيئي الفعلي والنتائج القابلة للقياس.",
			En: "Evaluates actual environmental performance and measurable results.",
		},
		Points: "150",
		EvidenceAr: []string{
			"سجلات المواد المعاد تدويرها (الوزن أو الحجم) وتقارير إعادة التدوير الداخلية",
			"سجلات وقود المركبات التي تُظهر انخفاض الانبعاثات أو اعتماد مركبات كهربائية/هجينة",
			"تقارير تدقيق النفايات أو قوائم المراجعة التي تُظهر ممارسات الفصل والتخلص السليم",
			"فواتير الخدمات التي تُظهر انخفاض استهلاك الطاقة أو المياه",
			"سجلات الأجهزة الموفرة للطاقة المركبة (مثل الفواتير ونماذج الموافقة الداخلية)",
			"سجلات المراقبة الداخلية التي تُظهر اتجاهات استهلاك الطاقة أو المياه بمرور الوقت",
		},
		EvidenceEn: []string{
			"Records of recycled materials (weight or volume), internal recycling reports.",
			"Vehicle fuel logs showing lower emissions or adoption of electric / hybrid vehicles.",
			"Waste audit reports or checklists showing proper segregation and disposal practices.",
			"Utility bills showing reduced energy or water usage.",
			"Records of installed energy-efficient devices (e.g., invoices, internal approval forms).",
			"Internal monitoring logs showing energy or water consumption trends over time.",
		},
		ExamplesAr: []string{
			"تطبيق برامج إعادة تدوير الورق والبلاستيك والنفايات المكتبية الأخرى",
			"التحول إلى وسائل نقل صديقة للبيئة للتوصيل أو مركبات الشركة لتقليل الانبعاثات",
			"تقديم إرشادات فصل النفايات والتخلص منها في مناطق الإنتاج أو المكاتب",
			"تركيب إضاءة أو معدات موفرة للطاقة لتقليل استهلاك الكهرباء",
			"تطبيق إجراءات توفير المياه مثل الصنابير منخفضة التدفق أو أنظمة إعادة تدوير المياه",
			"مراقبة وتحسين أنظمة التدفئة والتهوية والتكييف لتوفير الطاقة",
		},
		ExamplesEn: []string{
			"Implement recycling programs for paper, plastics, and other office waste.",
			"Switch to eco-friendly transportation for deliveries or company vehicles to reduce emissions.",
			"Introduce waste segregation and disposal guidelines in production or office areas.",
			"Install energy-efficient lighting or equipment to reduce electricity consumption.",
			"Implement water-saving measures like low-flow taps or water recycling systems.",
			"Monitor and optimize heating, ventilation, and cooling systems to save energy.",
		},
	},
	{
		ID:    "green-impact",
		Title: Text{Ar: "أثر الابتكار البيئي", En: "Environmental Innovation Impact"},
		Group: GroupResults,
		Description: Text{
			Ar: "يقيّم الأثر الفعلي للابتكارات البيئية المطبقة.",
			En: "Evaluates the actual impact of applied environmental innovations.",
		},
		Points: "100",
		EvidenceAr: []string{
			"تقارير المشاريع أو الوثائق الداخلية التي تُظهر نتائج تقليل الطاقة/المياه",
			"مواصفات المنتجات ونتائج الاختبارات أو الصور التي تُظهر التغييرات الصديقة للبيئة",
			"التقارير الداخلية أو لوحات المعلومات التي تُظهر تقليل الورق/الطباعة وتحسين الكفاءة",
			"فواتير الخدمات التي تُظهر انخفاض تكاليف الطاقة/المياه قبل وبعد المبادرات",
			"تقارير التكاليف الداخلية التي تُظهر الوفورات من تقليل النفايات أو برامج إعادة التدوير",
			"تقارير المبيعات أو الفواتير التي تُظهر الإيرادات من العروض الصديقة للبيئة",
		},
		EvidenceEn: []string{
			"Project reports or internal documentation showing energy/water reduction results.",
			"Product specifications, test results, or photos showing eco-friendly changes.",
			"Internal reports or dashboards showing paper/printing reduction and efficiency improvements.",
			"Utility bills showing lower energy/water costs before and after initiatives.",
			"Internal cost reports showing savings from waste reduction or recycling programs.",
			"Sales reports or invoices demonstrating revenue from environmentally friendly offerings.",
		},
		ExamplesAr: []string{
			"تطوير عملية جديدة تقلل من استهلاك الطاقة أو المياه في العمليات",
			"تقديم تعديل على منتج أو خدمة يستخدم مواد صديقة للبيئة أو ينتج نفايات أقل",
			"تجريب حل رقمي (مثل سير عمل بدون ورق) يقلل الأثر البيئي مع تحسين الكفاءة",
			"توفير في التكاليف من انخفاض استهلاك الطاقة والمياه بسبب مبادرات الاستدامة أو تقارير العائد على الاستثمار للمشاريع المستدامة",
			"تحقيق تخفيض في التكاليف التشغيلية من خلال إعادة تدوير المواد أو تقليل النفايات",
			"تحقيق إيرادات إضافية من المنتجات أو الخدمات الصديقة للبيئة التي تجذب العملاء المهتمين بالبيئة",
		},
		ExamplesEn: []string{
			"Develop a new process that reduces energy or water consumption in operations.",
			"Introduce a product or service modification that uses eco-friendly materials or generates less waste.",
			"Pilot a digital solution (e.g., paperless workflows) that reduces environmental impact while improving efficiency.",
			"Cost savings from reduced energy and water usage due to sustainability initiatives or ROI reports for sustainable projects.",
			"Achieve reduced operational costs by recycling materials or reducing waste.",
			"Generate additional revenue from eco-friendly products or services that appeal to environmentally conscious customers.",
		},
	},
}
