package sqlinline

const QInsertDonation = `--sql 480a2573-21b5-47a6-8c09-b27829b2881b
insert into donations(id, amount, donor_name, campaign_id, project_id, is_recurring, created_at)
values ($1::text, $2::numeric, $3::text, nullif($4::text, ''), $5::text, $6::boolean, now())
returning created_at;
`

const QListDonationsByProject = `--sql e2b1547c-a80c-42fa-8cf1-6d386efcfe43
select id, amount::float8, donor_name, campaign_id, project_id, is_recurring, created_at
from donations
where project_id = $1::text
order by created_at desc;
`

const QSeedDonation = `--sql 6c2ab3cb-2545-40e3-b06a-194347640faf
insert into donations(id, amount, donor_name, campaign_id, project_id, is_recurring, created_at)
values ($1::text, $2::numeric, $3::text, $4::text, $5::text, $6::boolean, $7::timestamptz)
on conflict (id) do nothing;
`
